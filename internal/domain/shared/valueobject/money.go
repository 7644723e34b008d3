package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	INR Currency = "INR" // Indian Rupee (default)
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = INR

// minorUnitsPerMajor is the number of minor units (paise) in one major unit (rupee)
const minorUnitsPerMajor = 100

// Money is a value object representing monetary amounts as integer minor
// units (paise). It is immutable - all operations return new Money instances.
// Amounts are never held as floating point.
type Money struct {
	minor    int64
	currency Currency
}

// NewMoney creates a new Money from an amount in minor units (paise)
func NewMoney(minor int64, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, fmt.Errorf("currency cannot be empty")
	}
	return Money{minor: minor, currency: currency}, nil
}

// NewMoneyINR creates Money in INR from an amount in paise
func NewMoneyINR(minor int64) Money {
	return Money{minor: minor, currency: INR}
}

// NewMoneyFromDecimal creates Money from a decimal major-unit amount.
// Returns an error when the value does not land on a whole minor unit.
func NewMoneyFromDecimal(amount decimal.Decimal, currency Currency) (Money, error) {
	shifted := amount.Mul(decimal.NewFromInt(minorUnitsPerMajor))
	if !shifted.IsInteger() {
		return Money{}, fmt.Errorf("amount %s has sub-minor-unit precision", amount)
	}
	return NewMoney(shifted.IntPart(), currency)
}

// Zero returns a zero-value Money in the specified currency
func Zero(currency Currency) Money {
	return Money{minor: 0, currency: currency}
}

// ZeroINR returns a zero-value Money in INR
func ZeroINR() Money {
	return Zero(INR)
}

// Minor returns the amount in minor units (paise)
func (m Money) Minor() int64 {
	return m.minor
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// Decimal returns the major-unit amount as an exact decimal
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.minor, -2)
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.minor == 0
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.minor > 0
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.minor < 0
}

// Add returns a new Money with the sum of both amounts
// Returns error if currencies don't match
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{minor: m.minor + other.minor, currency: m.currency}, nil
}

// MustAdd adds two Money values, panics if currencies don't match
func (m Money) MustAdd(other Money) Money {
	result, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Subtract returns a new Money with the difference. The result may be
// negative; it is never clamped - callers decide whether a deficit is an
// error. Returns error if currencies don't match.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot subtract money with different currencies: %s and %s", m.currency, other.currency)
	}
	return Money{minor: m.minor - other.minor, currency: m.currency}, nil
}

// MustSubtract subtracts two Money values, panics if currencies don't match
func (m Money) MustSubtract(other Money) Money {
	result, err := m.Subtract(other)
	if err != nil {
		panic(err)
	}
	return result
}

// MultiplyInt returns a new Money multiplied by an integer quantity
func (m Money) MultiplyInt(factor int64) Money {
	return Money{minor: m.minor * factor, currency: m.currency}
}

// Negate returns a new Money with the sign reversed
func (m Money) Negate() Money {
	return Money{minor: -m.minor, currency: m.currency}
}

// Equals returns true if both Money values are equal (same amount and currency)
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.minor == other.minor
}

// LessThan returns true if this Money is less than the other
// Returns error if currencies don't match
func (m Money) LessThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("cannot compare money with different currencies: %s and %s", m.currency, other.currency)
	}
	return m.minor < other.minor, nil
}

// LessThanOrEqual returns true if this Money is less than or equal to the other
func (m Money) LessThanOrEqual(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("cannot compare money with different currencies: %s and %s", m.currency, other.currency)
	}
	return m.minor <= other.minor, nil
}

// GreaterThan returns true if this Money is greater than the other
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("cannot compare money with different currencies: %s and %s", m.currency, other.currency)
	}
	return m.minor > other.minor, nil
}

// GreaterThanOrEqual returns true if this Money is greater than or equal to the other
func (m Money) GreaterThanOrEqual(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("cannot compare money with different currencies: %s and %s", m.currency, other.currency)
	}
	return m.minor >= other.minor, nil
}

// String returns a string representation of the Money
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(2), m.currency)
}

// StringFixed returns the major-unit amount as a string with two decimal places
func (m Money) StringFixed() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON implements json.Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}{
		Amount:   m.Decimal().StringFixed(2),
		Currency: m.currency,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The amount is parsed as a
// decimal major-unit string and must land on a whole minor unit.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount   string   `json:"amount"`
		Currency Currency `json:"currency"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	parsed, err := NewMoneyFromDecimal(amount, v.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Sum adds a sequence of Money values starting from zero in the given
// currency. Returns error on the first currency mismatch.
func Sum(currency Currency, values ...Money) (Money, error) {
	total := Zero(currency)
	for _, v := range values {
		var err error
		total, err = total.Add(v)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
