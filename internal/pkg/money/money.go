// Package money holds currency amounts as integer paise/cents so that
// aggregation over many nights never accumulates float drift.
package money

import (
	"math"
	"strconv"
)

type Money struct {
	cents int64
}

var Zero = Money{}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromFloat rounds half away from zero to the nearest cent.
func FromFloat(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount rounded to 2 decimal places.
func (m Money) Float() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 2, 64)
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Percent returns pct percent of m, rounded to the nearest cent.
func (m Money) Percent(pct float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * pct / 100.0))}
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) ClampZero() Money {
	if m.cents < 0 {
		return Zero
	}
	return m
}

func Min(a, b Money) Money {
	if a.cents < b.cents {
		return a
	}
	return b
}
