package portafolio

import (
	"encoding/json"
	"testing"
)

func TestPesosFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234567, "$1.234.567"},
		{1000, "$1.000"},
		{999, "$999"},
		{0, "$0"},
		{150000, "$150.000"},
		{1234567.49, "$1.234.567"},
	}
	for _, tc := range tests {
		if got := COP(tc.in).String(); got != tc.want {
			t.Errorf("COP(%v).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := COP(1_000_000), COP(250_000)
	if got := a.Add(b); !got.Equal(COP(1_250_000)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(COP(750_000)) {
		t.Errorf("Sub = %v", got)
	}
	if got := b.MulFloat(12); !got.Equal(COP(3_000_000)) {
		t.Errorf("MulFloat = %v", got)
	}
	if got := a.DivFloat(4); !got.Equal(b) {
		t.Errorf("DivFloat = %v", got)
	}
	if !a.GreaterThan(b) || !b.LessThan(a) {
		t.Error("comparison operators disagree")
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	var zero Money
	got := zero.Add(COP(100))
	if got.Currency() != "COP" {
		t.Errorf("zero value + COP currency = %q, want COP", got.Currency())
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(COP(1_234_567))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "1234567" {
		t.Errorf("marshal = %s, want a bare number", b)
	}
	var m Money
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !m.Equal(COP(1_234_567)) {
		t.Errorf("round trip = %v", m)
	}
}

func TestSignedString(t *testing.T) {
	if got := COP(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := COP(1000).SignedString(); got != "+$1.000" {
		t.Errorf("positive SignedString = %q", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12).String(); got != "12.00%" {
		t.Errorf("String() = %q", got)
	}
	if !Percent(12).Equal(12.00001) {
		t.Error("Equal should tolerate sub-precision noise")
	}
	if Percent(12).Fraction() != 0.12 {
		t.Errorf("Fraction() = %v", Percent(12).Fraction())
	}
	if got := Percent(12).Monthly(); got != 1 {
		t.Errorf("Monthly() = %v", got)
	}
}
