package hypixel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

const DefaultApiUrl = "https://api.hypixel.net/"

var ErrPlayerNotFound = errors.New("the player has never joined Hypixel")

type HypixelApi struct {
	http   *http.Client
	apiUrl string
	apiKey string
}

func NewHypixelApi(http *http.Client, apiUrl string, apiKey string) *HypixelApi {
	if apiUrl == "" {
		apiUrl = DefaultApiUrl
	}

	if !strings.HasSuffix(apiUrl, "/") {
		apiUrl += "/"
	}

	return &HypixelApi{
		http:   http,
		apiUrl: apiUrl,
		apiKey: apiKey,
	}
}

// Player returns the raw player document
// See https://api.hypixel.net/#tag/Player-Data/paths/~1v2~1player/get
func (c *HypixelApi) Player(ctx context.Context, id uuid.UUID) ([]byte, error) {
	body, err := c.get(ctx, "player", id)
	if err != nil {
		return nil, err
	}

	player := gjson.GetBytes(body, "player")
	if !player.Exists() || player.Type == gjson.Null {
		return nil, ErrPlayerNotFound
	}

	return body, nil
}

// Friends returns the raw friends list document
func (c *HypixelApi) Friends(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return c.get(ctx, "friends", id)
}

func (c *HypixelApi) get(ctx context.Context, method string, id uuid.UUID) ([]byte, error) {
	query := url.Values{}
	query.Set("uuid", id.String())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiUrl+method+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	request.Header.Set("API-Key", c.apiKey)

	response, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, errorFromResponse(response.StatusCode, body)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid json in the %s response", method)
	}

	if !gjson.GetBytes(body, "success").Bool() {
		return nil, &BadRequestError{Cause: gjson.GetBytes(body, "cause").String()}
	}

	return body, nil
}

func errorFromResponse(status int, body []byte) error {
	cause := gjson.GetBytes(body, "cause").String()
	switch {
	case status == http.StatusBadRequest:
		return &BadRequestError{Cause: cause}
	case status == http.StatusForbidden:
		return &ForbiddenError{Cause: cause}
	case status == http.StatusTooManyRequests:
		return &TooManyRequestsError{Throttled: gjson.GetBytes(body, "throttle").Bool()}
	case status >= 500:
		return &ServerError{Status: status}
	}

	return fmt.Errorf("unexpected response status code: %d", status)
}

// Happens when some data is missing or the request is malformed
type BadRequestError struct {
	Cause string
}

func (e *BadRequestError) Error() string {
	return "400: " + e.Cause
}

// Hypixel responds with 403 when the API key is missing or invalid
type ForbiddenError struct {
	Cause string
}

func (e *ForbiddenError) Error() string {
	if e.Cause == "" {
		return "403: Forbidden"
	}

	return "403: " + e.Cause
}

// When the key exceeds the set limit of requests, this error will be returned
type TooManyRequestsError struct {
	Throttled bool
}

func (*TooManyRequestsError) Error() string {
	return "429: Too Many Requests"
}

type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, "Server error")
}
