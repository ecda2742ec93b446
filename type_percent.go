package stockfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

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

// GainOn computes the gain of holding a share bought at 'purchase' and now
// quoted at 'current', as a percentage of the purchase price. A zero
// purchase price has no defined gain and returns an error rather than an
// infinity.
func GainOn(current, purchase decimal.Decimal) (Percent, error) {
	if purchase.IsZero() {
		return 0, fmt.Errorf("gain is undefined for a zero purchase price")
	}
	gain := current.Sub(purchase).Div(purchase).Mul(decimal.NewFromInt(100))
	return Percent(gain.InexactFloat64()), nil
}
