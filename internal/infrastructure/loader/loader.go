package loader

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a decimal monetary amount in major units as written in the data
// file, e.g. 2450.50 rupees. It parses from the scalar's exact text so no
// float rounding sneaks in.
type Amount struct {
	decimal.Decimal
}

// UnmarshalYAML implements yaml.Unmarshaler
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", value.Value, err)
	}
	a.Decimal = d
	return nil
}

// File is the root of a data file
type File struct {
	Clients      []ClientRecord      `yaml:"clients"`
	Transactions []TransactionRecord `yaml:"transactions"`
	Orders       []OrderRecord       `yaml:"orders"`
}

// ClientRecord describes a client and the payments they have made
type ClientRecord struct {
	Name     string          `yaml:"name"`
	Email    string          `yaml:"email"`
	Payments []PaymentRecord `yaml:"payments"`
}

// PaymentRecord is a payment listed under a client
type PaymentRecord struct {
	Amount Amount `yaml:"amount"`
	Date   string `yaml:"date"`
	Mode   string `yaml:"mode"`
	Note   string `yaml:"note"`
}

// TransactionRecord is a standalone ledger entry referencing its client by
// name. Type must be income or expense.
type TransactionRecord struct {
	Client string `yaml:"client"`
	Type   string `yaml:"type"`
	Amount Amount `yaml:"amount"`
	Date   string `yaml:"date"`
	Mode   string `yaml:"mode"`
	Note   string `yaml:"note"`
}

// OrderRecord describes an order with its line items and initial flags
type OrderRecord struct {
	Client   string       `yaml:"client"`
	Date     string       `yaml:"date"`
	Discount Amount       `yaml:"discount"`
	Items    []ItemRecord `yaml:"items"`
	Flags    []string     `yaml:"flags"`
}

// ItemRecord is one order line item
type ItemRecord struct {
	Description string `yaml:"description"`
	Quantity    int64  `yaml:"quantity"`
	Rate        Amount `yaml:"rate"`
}

// Load reads and parses a YAML data file
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	return Parse(raw)
}

// Parse parses YAML data file contents
func Parse(raw []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return &file, nil
}
