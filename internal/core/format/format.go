// Package format holds the pure display helpers shared by the stores and the
// HTTP layer.
package format

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDelay is the simulated latency of mock network calls.
const DefaultDelay = 800 * time.Millisecond

// DefaultTruncateLength is used by Truncate when no positive max is given.
const DefaultTruncateLength = 80

// Star is one glyph of a five-star rating.
type Star string

const (
	StarFull  Star = "full"
	StarHalf  Star = "half"
	StarEmpty Star = "empty"
)

const (
	maxStars      = 5
	halfThreshold = 0.3
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders v as US dollars with en-US grouping, e.g. "$1,234.50".
// Cents are rounded half away from zero.
func FormatPrice(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + usd.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// Discount returns the percentage saved from original to current, rounded to
// the nearest whole number. It is 0 when there is no real discount.
func Discount(original, current float64) int {
	if original <= 0 || original <= current {
		return 0
	}
	pct := decimal.NewFromFloat(original - current).
		Div(decimal.NewFromFloat(original)).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}

// StarArray expands rating into exactly five stars. A fractional part of at
// least 0.3 becomes one half star.
func StarArray(rating float64) []Star {
	stars := make([]Star, 0, maxStars)
	full := int(math.Floor(rating))
	if full < 0 {
		full = 0
	}
	for i := 0; i < full && len(stars) < maxStars; i++ {
		stars = append(stars, StarFull)
	}
	if rating-math.Floor(rating) >= halfThreshold && len(stars) < maxStars {
		stars = append(stars, StarHalf)
	}
	for len(stars) < maxStars {
		stars = append(stars, StarEmpty)
	}
	return stars
}

// Truncate shortens text to at most max runes and appends an ellipsis when it
// had to cut. A non-positive max means DefaultTruncateLength.
func Truncate(text string, max int) string {
	if max <= 0 {
		max = DefaultTruncateLength
	}
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "…"
}

// Sleep blocks for d. It cannot be cancelled: a mock call that started always
// finishes.
func Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	<-time.After(d)
}
