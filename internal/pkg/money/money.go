// Package money provides exact fixed-point currency arithmetic in integer
// minor units. Floating point is never used on the price path.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid money amount")
	ErrNegativeAmount = errors.New("money cannot be negative")
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse accepts a decimal string such as "249", "249.9" or "249.00".
// More than two fractional digits are rejected rather than rounded.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return Money{}, ErrInvalidAmount
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}
	if intPart == "" || len(fracPart) > 2 {
		return Money{}, ErrInvalidAmount
	}
	// The sign was consumed above; both parts must be bare digit runs so
	// strconv cannot accept a second sign ("1.-5", "--5").
	if !isDigits(intPart) || !isDigits(fracPart) {
		return Money{}, ErrInvalidAmount
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	var frac int64
	switch len(fracPart) {
	case 0:
	case 1:
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		frac *= 10
	case 2:
		frac, err = strconv.ParseInt(fracPart, 10, 64)
	}
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	cents := units*100 + frac
	if neg {
		cents = -cents
	}
	return Money{cents: cents}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulInt scales the amount by a whole factor (e.g. price per night × nights).
func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// String renders the amount with exactly two fractional digits, e.g. "498.00".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON emits the decimal string form, matching how the API has always
// serialized prices.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// UnmarshalJSON accepts both a JSON number literal and a quoted decimal
// string; clients send either.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
