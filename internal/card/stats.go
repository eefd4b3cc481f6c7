package card

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// StatLine is a single line displayed to the right of the avatar.
type StatLine interface {
	Render(now time.Time) string
}

// Literal is displayed as is.
type Literal string

func (l Literal) Render(time.Time) string {
	return string(l)
}

// Keyed is displayed as "<label>: <value>".
type Keyed struct {
	Label string
	Value Value
}

func (k Keyed) Render(now time.Time) string {
	return k.Label + ": " + k.Value.Format(now)
}

type Value interface {
	Format(now time.Time) string
}

type Number int64

func (n Number) Format(time.Time) string {
	return strconv.FormatInt(int64(n), 10)
}

type Text string

func (t Text) Format(time.Time) string {
	return string(t)
}

// Timestamp is formatted relatively to the render time.
type Timestamp time.Time

func (t Timestamp) Format(now time.Time) string {
	return FormatTime(time.Time(t), now)
}

const notAvailable = "N/A"

// Ratio rounds numerator/denominator to 2 decimal places.
// A zero denominator yields "N/A" instead of a division fault.
func Ratio(numerator int64, denominator int64) string {
	if denominator == 0 {
		return notAvailable
	}

	rounded := math.Round(float64(numerator)/float64(denominator)*100) / 100
	result := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.ContainsAny(result, ".eE") {
		result += ".0"
	}

	return result
}

func ratioWithCounts(numerator int64, numeratorLabel string, denominator int64, denominatorLabel string) Text {
	return Text(fmt.Sprintf(
		"%s (%s: %d, %s: %d)",
		Ratio(numerator, denominator),
		numeratorLabel,
		numerator,
		denominatorLabel,
		denominator,
	))
}
