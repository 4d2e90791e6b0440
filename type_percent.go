package portafolio

import "fmt"

// Percent is a rate expressed in percent units: Percent(12) is 12%.
type Percent float64

// Fraction returns the rate as a plain fraction: Percent(12).Fraction() is 0.12.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

// Monthly converts an annual percent rate to its flat monthly equivalent.
func (p Percent) Monthly() Percent { return p / 12 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
