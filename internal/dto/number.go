package dto

import "github.com/shopspring/decimal"

// Number renders a decimal as a JSON number with exactly two fractional
// digits.
type Number decimal.Decimal

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).StringFixed(2)), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = Number(d)
	return nil
}

func (n Number) Decimal() decimal.Decimal {
	return decimal.Decimal(n)
}
