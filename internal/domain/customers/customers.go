package customers

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrPinEmpty  = errors.New("customer pin is empty")
	ErrPinLength = errors.New("customer pin must be 4 digits")
)

// Customer is a bank-side account record, keyed by PIN. PINs are stored
// in the clear: this service is a verification stub, not a real bank.
type Customer struct {
	pin     string
	name    string
	balance decimal.Decimal
}

func NewCustomer(pin, name string, balance decimal.Decimal) (*Customer, error) {
	if err := ValidatePin(pin); err != nil {
		return nil, err
	}

	return &Customer{
		pin:     pin,
		name:    name,
		balance: balance,
	}, nil
}

func ValidatePin(pin string) error {
	if pin == "" {
		return ErrPinEmpty
	}

	if len(pin) != 4 {
		return ErrPinLength
	}

	for _, c := range pin {
		if c < '0' || c > '9' {
			return ErrPinLength
		}
	}

	return nil
}

func (c *Customer) Pin() string {
	return c.pin
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Balance() decimal.Decimal {
	return c.balance
}
