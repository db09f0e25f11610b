package validate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/spintracker/internal/domain"
)

// maxAmount is the largest magnitude a numeric(10,2) column holds.
var maxAmount = decimal.RequireFromString("99999999.99")

type spinResult struct {
	Result string `json:"result" validate:"required,max=255"`
}

// Spin parses a spin payload field by field so each field reports its own
// problem. The returned error is non-nil only when the body is not a JSON
// object.
func Spin(body []byte) (domain.SpinInput, Errors, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.SpinInput{}, nil, err
	}

	var input domain.SpinInput
	errs := Errors{}

	if value, ok := present(raw, "result"); !ok {
		errs.Add("result", messages["result.required"])
	} else if err := json.Unmarshal(value, &input.Result); err != nil {
		errs.Add("result", "The spin result must be a valid string.")
	} else {
		for field, msgs := range Struct(spinResult{Result: input.Result}) {
			errs[field] = append(errs[field], msgs...)
		}
	}

	if value, ok := present(raw, "bet_amount"); !ok {
		errs.Add("bet_amount", "The bet amount is required.")
	} else if amount, ok := number(value); !ok {
		errs.Add("bet_amount", "The bet amount must be a valid number.")
	} else if amount.IsNegative() {
		errs.Add("bet_amount", "The bet amount must be greater than or equal to 0.")
	} else if amount.Round(2).GreaterThan(maxAmount) {
		errs.Add("bet_amount", "The bet amount may not be greater than 99999999.99.")
	} else {
		input.BetAmount = amount
	}

	if value, ok := present(raw, "pl"); !ok {
		errs.Add("pl", "The profit/loss amount is required.")
	} else if amount, ok := number(value); !ok {
		errs.Add("pl", "The profit/loss amount must be a valid number.")
	} else if amount.Round(2).Abs().GreaterThan(maxAmount) {
		errs.Add("pl", "The profit/loss amount may not exceed 99999999.99 in either direction.")
	} else {
		input.PL = amount
	}

	if len(errs) > 0 {
		return domain.SpinInput{}, errs, nil
	}
	return input, nil, nil
}

func present(raw map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	value, ok := raw[key]
	if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, false
	}
	return value, true
}

// number accepts JSON numbers and numeric strings.
func number(value json.RawMessage) (decimal.Decimal, bool) {
	text := string(bytes.TrimSpace(value))
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(value, &text); err != nil {
			return decimal.Zero, false
		}
		text = strings.TrimSpace(text)
	}
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
