// Package fixed provides the two-decimal fixed-point type used for bazaar
// unit prices.
//
// Conventions:
//   - A Point stores hundredths as an int64 (1.23 is raw 123)
//   - Mul and Div truncate toward zero after rescaling
//   - Overflow is not checked; values must fit int64
package fixed

import (
	"errors"
	"math"
	"strconv"
)

// Scale is the raw-unit factor: 10^2 for two decimal places.
const Scale = 100

// ErrDivideByZero is returned by Div when the divisor is zero.
var ErrDivideByZero = errors.New("fixed: division by zero")

// Point is a currency-like quantity with exactly two fractional digits,
// backed by its raw hundredths count. The raw value is the sole source of
// truth: comparisons go through Raw (or plain ==), never through Float.
type Point struct {
	raw int64
}

// FromFloat builds a Point by rounding f to the nearest hundredth.
// Rounding is half away from zero (math.Round). This is the only place
// fractional information is lost; note that e.g. 1.005 rounds down to 1.00
// because its binary representation sits just below the true half.
func FromFloat(f float64) Point {
	return Point{raw: int64(math.Round(f * Scale))}
}

// FromRaw builds a Point directly from raw hundredths, no rounding.
func FromRaw(i int64) Point {
	return Point{raw: i}
}

// Raw returns the raw hundredths count.
func (p Point) Raw() int64 {
	return p.raw
}

// Float converts back to float64 for display or interop.
func (p Point) Float() float64 {
	return float64(p.raw) / Scale
}

// Add returns p + o. Exact: raw units add directly.
func (p Point) Add(o Point) Point {
	return Point{raw: p.raw + o.raw}
}

// Sub returns p - o. Exact: raw units subtract directly.
func (p Point) Sub(o Point) Point {
	return Point{raw: p.raw - o.raw}
}

// Mul returns p * o, scaled back down to two decimals with truncating
// integer division. The result keeps single, not double, precision:
// 0.10 * 0.10 is 0.01, and the sub-hundredth remainder is discarded.
func (p Point) Mul(o Point) Point {
	return Point{raw: p.raw * o.raw / Scale}
}

// Div returns p / o at two-decimal precision, scaling the dividend up
// before truncating integer division. Fails with ErrDivideByZero when o
// is zero.
func (p Point) Div(o Point) (Point, error) {
	if o.raw == 0 {
		return Point{}, ErrDivideByZero
	}
	return Point{raw: p.raw * Scale / o.raw}, nil
}

// String renders with exactly two digits after the decimal point.
func (p Point) String() string {
	return strconv.FormatFloat(p.Float(), 'f', 2, 64)
}

// MarshalJSON emits the shortest decimal form of the value (e.g. 1.23) so
// a written snapshot parses back to a bit-identical Point.
func (p Point) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, p.Float(), 'f', -1, 64), nil
}

// UnmarshalJSON parses the feed's float wire field through FromFloat.
// Parsing is deterministic, so two levels carrying the same wire value
// always decode to equal Points.
func (p *Point) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*p = FromFloat(f)
	return nil
}
