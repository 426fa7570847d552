package inmemory

import (
	"context"
	"sync"

	"github.com/andymarkow/cashpoint/internal/domain/customers"
	"github.com/andymarkow/cashpoint/internal/storage"
)

var _ storage.Storage = (*Storage)(nil)

type CustomerStore struct {
	customers map[string]*customers.Customer
	mu        sync.Mutex
}

type Storage struct {
	CustomerStore CustomerStore
}

func NewStorage() *Storage {
	return &Storage{
		CustomerStore: CustomerStore{
			customers: make(map[string]*customers.Customer),
		},
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) Ping(_ context.Context) error {
	return nil
}

func (s *Storage) CreateCustomer(_ context.Context, customer *customers.Customer) error {
	s.CustomerStore.mu.Lock()
	defer s.CustomerStore.mu.Unlock()

	if _, ok := s.CustomerStore.customers[customer.Pin()]; ok {
		return storage.ErrCustomerAlreadyExists
	}

	s.CustomerStore.customers[customer.Pin()] = customer

	return nil
}

func (s *Storage) GetCustomerByPin(_ context.Context, pin string) (*customers.Customer, error) {
	s.CustomerStore.mu.Lock()
	defer s.CustomerStore.mu.Unlock()

	customer, ok := s.CustomerStore.customers[pin]
	if !ok {
		return nil, storage.ErrCustomerNotFound
	}

	return customer, nil
}
