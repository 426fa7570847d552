package session

import (
	"fmt"
	"strings"

	"github.com/andymarkow/cashpoint/internal/domain/account"
)

const (
	pinBufferCap    = 4
	amountBufferCap = 5
)

// state is the session's tagged variant: exactly one of authState or
// withdrawState is active, each carrying its own input buffer. The only
// defined transition is authState -> withdrawState on a verified PIN.
type state interface {
	bufferCap() int
	buffer() string
	setBuffer(buf string)
	status() string
}

type authState struct {
	pin string
}

func (s *authState) bufferCap() int {
	return pinBufferCap
}

func (s *authState) buffer() string {
	return s.pin
}

func (s *authState) setBuffer(buf string) {
	s.pin = buf
}

func (s *authState) status() string {
	return "PIN: " + strings.Repeat("*", len(s.pin))
}

type withdrawState struct {
	amount string
	acc    *account.Account
}

func (s *withdrawState) bufferCap() int {
	return amountBufferCap
}

func (s *withdrawState) buffer() string {
	return s.amount
}

func (s *withdrawState) setBuffer(buf string) {
	s.amount = buf
}

func (s *withdrawState) status() string {
	if s.acc.InOverdraft() {
		return fmt.Sprintf("Overdraft used: %d | Amount: %s", s.acc.OverdraftUsed(), s.amount)
	}

	return fmt.Sprintf("Balance: %d | Amount: %s", s.acc.Balance(), s.amount)
}
