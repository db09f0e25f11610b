package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/spintracker/internal/dto"
)

func TestStruct(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Errors
	}{
		{
			name:  "Valid registration",
			input: dto.RegisterRequestDTO{Name: "Player", Email: "player@example.com", Password: "password123"},
		},
		{
			name:  "Invalid registration",
			input: dto.RegisterRequestDTO{Name: "", Email: "not-an-email", Password: "short"},
			expected: Errors{
				"name":     {"The name field is required."},
				"email":    {"The email must be a valid email address."},
				"password": {"The password must be at least 8 characters."},
			},
		},
		{
			name:     "Missing login password",
			input:    dto.LoginRequestDTO{Email: "player@example.com"},
			expected: Errors{"password": {"The password field is required."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Struct(tt.input))
		})
	}
}

func TestSpin(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
		errors    Errors
		result    string
		bet       string
		pl        string
	}{
		{
			name:   "Valid numbers",
			body:   `{"result":"1","bet_amount":2.5,"pl":2.5}`,
			result: "1",
			bet:    "2.5",
			pl:     "2.5",
		},
		{
			name:   "Numeric strings",
			body:   `{"result":"0","bet_amount":" 4.00 ","pl":"-4"}`,
			result: "0",
			bet:    "4",
			pl:     "-4",
		},
		{
			name: "Everything missing",
			body: `{}`,
			errors: Errors{
				"result":     {"The spin result is required."},
				"bet_amount": {"The bet amount is required."},
				"pl":         {"The profit/loss amount is required."},
			},
		},
		{
			name: "Nulls and empty result",
			body: `{"result":"","bet_amount":null,"pl":null}`,
			errors: Errors{
				"result":     {"The spin result is required."},
				"bet_amount": {"The bet amount is required."},
				"pl":         {"The profit/loss amount is required."},
			},
		},
		{
			name: "Wrong types",
			body: `{"result":1,"bet_amount":"ten","pl":true}`,
			errors: Errors{
				"result":     {"The spin result must be a valid string."},
				"bet_amount": {"The bet amount must be a valid number."},
				"pl":         {"The profit/loss amount must be a valid number."},
			},
		},
		{
			name: "Negative bet and long result",
			body: `{"result":"` + strings.Repeat("x", 256) + `","bet_amount":-1,"pl":0}`,
			errors: Errors{
				"result":     {"The spin result may not be greater than 255 characters."},
				"bet_amount": {"The bet amount must be greater than or equal to 0."},
			},
		},
		{
			name: "Amounts too large",
			body: `{"result":"1","bet_amount":100000000,"pl":-99999999.999}`,
			errors: Errors{
				"bet_amount": {"The bet amount may not be greater than 99999999.99."},
				"pl":         {"The profit/loss amount may not exceed 99999999.99 in either direction."},
			},
		},
		{
			name:      "Not an object",
			body:      `[1,2]`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, errs, err := Spin([]byte(tt.body))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.errors != nil {
				assert.Equal(t, tt.errors, errs)
				return
			}
			assert.Nil(t, errs)
			assert.Equal(t, tt.result, input.Result)
			assert.Equal(t, tt.bet, input.BetAmount.String())
			assert.Equal(t, tt.pl, input.PL.String())
		})
	}
}
