package storage

import (
	"context"
	"errors"

	"github.com/andymarkow/cashpoint/internal/domain/customers"
)

var (
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrCustomerNotFound      = errors.New("customer not found")
)

// CustomerStorage is the bank-side record store backing the
// PIN-verification service. Records are keyed by PIN: the terminal never
// identifies the customer any other way.
type CustomerStorage interface {
	CreateCustomer(ctx context.Context, customer *customers.Customer) error
	GetCustomerByPin(ctx context.Context, pin string) (*customers.Customer, error)
}

type Storage interface {
	CustomerStorage
	Close() error
	Ping(ctx context.Context) error
}

func NewStorage(store Storage) Storage {
	return store
}
