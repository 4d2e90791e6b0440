package portafolio

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value. The zero value is zero pesos: the
// portfolio's reporting currency is the Colombian peso, so an empty currency
// means COP.
type Money struct {
	value decimal.Decimal
	cur   string
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](v T) decimal.Decimal {
	switch x := any(v).(type) {
	case decimal.Decimal:
		return x
	case float32:
		return decimal.NewFromFloat32(x)
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int32:
		return decimal.NewFromInt32(x)
	case int64:
		return decimal.NewFromInt(x)
	case uint:
		return decimal.NewFromUint64(uint64(x))
	case uint32:
		return decimal.NewFromUint64(uint64(x))
	case uint64:
		return decimal.NewFromUint64(x)
	}
	return decimal.Decimal{}
}

// M returns a Money of the given value in the given currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// COP returns a Money of the given value in Colombian pesos.
func COP[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value), cur: "COP"}
}

// pesos formats whole peso amounts the Colombian way: thousands separated
// with '.', no decimal digits, e.g. 1234567 renders as "$1.234.567".
var pesos = money.NewFormatter(0, ",", ".", "$", "$1")

// Currency returns the money's currency code, "COP" for the zero value.
func (m Money) Currency() string {
	if m.cur == "" {
		return "COP"
	}
	return m.cur
}

// String renders the amount. Pesos use the local convention, anything else
// falls back to the currency's own formatter.
func (m Money) String() string {
	if m.Currency() == "COP" {
		return pesos.Format(m.value.Round(0).IntPart())
	}
	cur := *money.New(0, m.cur).Currency()
	return cur.Formatter().Format(m.value.Shift(int32(cur.Fraction)).IntPart())
}

// SignedString renders the amount with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.Currency() == n.Currency() }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators. The "" currency is weak and takes the other side's.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// MulFloat scales the amount by a plain float factor.
func (m Money) MulFloat(f float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(f)), cur: m.cur}
}

// DivFloat divides the amount by a plain float divisor. The divisor must not
// be zero, callers guard per their own zero convention.
func (m Money) DivFloat(f float64) Money {
	return Money{value: m.value.Div(decimal.NewFromFloat(f)), cur: m.cur}
}

func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}

// AsFloat returns the amount as a float64 for the simulation layer, which
// works in floats. Keep accounting sums in Money.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON encodes the amount as a bare number. Every persisted record
// states the currency through its field name (capital_cop, capital_usd), so
// the currency is not repeated per value.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.value)
}

// UnmarshalJSON decodes a bare number into a peso amount.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	*m = Money{value: d, cur: "COP"}
	return nil
}
