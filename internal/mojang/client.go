package mojang

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const DefaultUserUrl = "https://api.ashcon.app/mojang/v2/user/"

var (
	ErrInvalidUsername = errors.New("the username passed doesn't meet Mojang's requirements")
	ErrUserNotFound    = errors.New("there is no Mojang account with such username")
)

// https://help.minecraft.net/hc/en-us/articles/4408950195341#h_01GE5JX1Z0CZ833A7S54Y195KV
var allowedUsernamesRegex = regexp.MustCompile(`(?i)^[0-9a-z_]{3,16}$`)

// MojangApi talks to a Mojang API mirror which returns the profile
// together with the skin file itself, so only one request is needed.
type MojangApi struct {
	http    *http.Client
	userUrl string
}

func NewMojangApi(http *http.Client, userUrl string) *MojangApi {
	if userUrl == "" {
		userUrl = DefaultUserUrl
	}

	if !strings.HasSuffix(userUrl, "/") {
		userUrl += "/"
	}

	return &MojangApi{
		http:    http,
		userUrl: userUrl,
	}
}

// User obtains the profile and the skin texture for the provided username
func (c *MojangApi) User(ctx context.Context, username string) (*UserResponse, error) {
	if !allowedUsernamesRegex.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userUrl+url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}

	if response.StatusCode != http.StatusOK {
		return nil, errorFromResponse(response)
	}

	var result *UserResponse

	body, _ := io.ReadAll(response.Body)
	err = json.Unmarshal(body, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

type UserResponse struct {
	Uuid     string            `json:"uuid"`
	Username string            `json:"username"`
	Textures *TexturesResponse `json:"textures"`
}

type TexturesResponse struct {
	Slim bool                  `json:"slim"`
	Skin *SkinTexturesResponse `json:"skin,omitempty"`
}

type SkinTexturesResponse struct {
	Url  string `json:"url"`
	Data string `json:"data"`
}

func errorFromResponse(response *http.Response) error {
	switch {
	case response.StatusCode == http.StatusBadRequest:
		type errorResponse struct {
			Error  string `json:"error"`
			Reason string `json:"reason"`
		}

		var decodedError errorResponse
		body, _ := io.ReadAll(response.Body)
		_ = json.Unmarshal(body, &decodedError)

		return &BadRequestError{ErrorType: decodedError.Error, Message: decodedError.Reason}
	case response.StatusCode == http.StatusForbidden:
		return &ForbiddenError{}
	case response.StatusCode == http.StatusTooManyRequests:
		return &TooManyRequestsError{}
	case response.StatusCode >= 500:
		return &ServerError{Status: response.StatusCode}
	}

	return fmt.Errorf("unexpected response status code: %d", response.StatusCode)
}

// When passed request params are invalid, the API returns 400 Bad Request error
type BadRequestError struct {
	ErrorType string
	Message   string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("400 %s: %s", e.ErrorType, e.Message)
}

type ForbiddenError struct {
}

func (*ForbiddenError) Error() string {
	return "403: Forbidden"
}

// When you exceed the set limit of requests, this error will be returned
type TooManyRequestsError struct {
}

func (*TooManyRequestsError) Error() string {
	return "429: Too Many Requests"
}

// ServerError happens when the API returns any response with 50* status
type ServerError struct {
	Status int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, "Server error")
}
