package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/andymarkow/cashpoint/internal/atm/allocator"
	"github.com/andymarkow/cashpoint/internal/domain/account"
	"github.com/andymarkow/cashpoint/internal/domain/receipts"
	"github.com/andymarkow/cashpoint/internal/domain/vault"
	"github.com/andymarkow/cashpoint/internal/errmsg"
)

// Verification is the outcome of a PIN check against the bank.
type Verification struct {
	OK      bool
	Balance int64
}

// PinVerifier is the remote PIN-verification collaborator. The call is
// synchronous: no other session event is processed until it returns.
type PinVerifier interface {
	VerifyPIN(ctx context.Context, pin string) (Verification, error)
}

// Display renders the terminal's single status line.
type Display interface {
	ShowStatus(text string)
}

// StatsPanel receives cumulative withdrawal figures after each
// successful dispense, already formatted for display.
type StatsPanel interface {
	ShowStats(lines []string)
}

// Session is the terminal state machine. It owns the vault, the
// per-login account and the active input buffer, and processes digit,
// backspace and confirm events strictly one at a time.
type Session struct {
	log            *slog.Logger
	vault          *vault.Vault
	verifier       PinVerifier
	display        Display
	stats          StatsPanel
	overdraftLimit int64
	flashFor       time.Duration
	schedule       func(d time.Duration, f func())

	mu       sync.Mutex
	state    state
	flashing bool
}

func New(v *vault.Vault, verifier PinVerifier, opts ...Option) *Session {
	s := &Session{
		log:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		vault:    v,
		verifier: verifier,
		display:  nopDisplay{},
		stats:    nopStats{},
		flashFor: 2 * time.Second,
		state:    &authState{},
	}

	s.schedule = func(d time.Duration, f func()) {
		time.AfterFunc(d, f)
	}

	for _, opt := range opts {
		opt(s)
	}

	s.display.ShowStatus(s.state.status())

	return s
}

// Option is a functional option for Session.
type Option func(s *Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

func WithDisplay(display Display) Option {
	return func(s *Session) {
		s.display = display
	}
}

func WithStatsPanel(stats StatsPanel) Option {
	return func(s *Session) {
		s.stats = stats
	}
}

func WithOverdraftLimit(limit int64) Option {
	return func(s *Session) {
		s.overdraftLimit = limit
	}
}

func WithFlashDuration(d time.Duration) Option {
	return func(s *Session) {
		s.flashFor = d
	}
}

// WithScheduler replaces the flash-revert timer. Tests use it to fire
// the revert callback deterministically.
func WithScheduler(schedule func(d time.Duration, f func())) Option {
	return func(s *Session) {
		s.schedule = schedule
	}
}

type nopDisplay struct{}

func (nopDisplay) ShowStatus(_ string) {}

type nopStats struct{}

func (nopStats) ShowStats(_ []string) {}

// Status returns the persistent status line for the current state.
func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.status()
}

// Digit appends a digit to the active buffer. It signals ErrInputRejected
// when the buffer is at capacity, when the byte is not a digit, or while
// a transient message is showing.
func (s *Session) Digit(d byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flashing {
		return errmsg.ErrInputRejected
	}

	if d < '0' || d > '9' {
		s.flashLocked(errmsg.ErrInputRejected.Text)

		return errmsg.ErrInputRejected
	}

	buf := s.state.buffer()
	if len(buf) >= s.state.bufferCap() {
		s.flashLocked(errmsg.ErrInputRejected.Text)

		return errmsg.ErrInputRejected
	}

	s.state.setBuffer(buf + string(d))
	s.display.ShowStatus(s.state.status())

	return nil
}

// Backspace removes the last buffered character. It signals
// ErrInputRejected on an empty buffer or while a transient message is
// showing.
func (s *Session) Backspace() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flashing {
		return errmsg.ErrInputRejected
	}

	buf := s.state.buffer()
	if buf == "" {
		s.flashLocked(errmsg.ErrInputRejected.Text)

		return errmsg.ErrInputRejected
	}

	s.state.setBuffer(buf[:len(buf)-1])
	s.display.ShowStatus(s.state.status())

	return nil
}

// Confirm submits the active buffer: the PIN while authenticating, the
// requested amount while withdrawing. The returned error is the signal
// surfaced to the user; nil means login or dispense succeeded.
func (s *Session) Confirm(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flashing {
		return errmsg.ErrInputRejected
	}

	switch st := s.state.(type) {
	case *authState:
		return s.confirmPin(ctx, st)

	case *withdrawState:
		return s.confirmAmount(st)
	}

	return fmt.Errorf("unknown session state %T", s.state)
}

func (s *Session) confirmPin(ctx context.Context, st *authState) error {
	pin := st.pin
	st.pin = ""

	res, err := s.verifier.VerifyPIN(ctx, pin)
	if err != nil {
		s.log.Error("verifier.VerifyPIN", slog.Any("error", err))
		s.flashLocked(errmsg.ErrInvalidPin.Text)

		return errmsg.ErrInvalidPin
	}

	if !res.OK {
		s.flashLocked(errmsg.ErrInvalidPin.Text)

		return errmsg.ErrInvalidPin
	}

	s.state = &withdrawState{
		acc: account.New(res.Balance, s.overdraftLimit),
	}

	s.log.Info("pin verified", slog.Int64("balance", res.Balance))
	s.display.ShowStatus(s.state.status())

	return nil
}

func (s *Session) confirmAmount(st *withdrawState) error {
	buf := st.amount
	st.amount = ""

	amount, err := strconv.ParseInt(buf, 10, 64)
	if err != nil || amount <= 0 {
		return s.rejectLocked(errmsg.ErrInvalidAmount)
	}

	if amount > st.acc.AvailableToWithdraw() {
		return s.rejectLocked(errmsg.ErrInsufficientBalance)
	}

	if amount%s.vault.Set().Smallest().Value() != 0 {
		return s.rejectLocked(errmsg.ErrNonDivisibleAmount)
	}

	if !s.vault.HasAtLeast(amount) {
		return s.rejectLocked(errmsg.ErrInsufficientCash)
	}

	bundle, err := allocator.Allocate(amount, s.vault)
	if err != nil {
		if !errors.Is(err, allocator.ErrDenominationMismatch) {
			s.log.Error("allocator.Allocate", slog.Any("error", err))
		}

		return s.rejectLocked(errmsg.ErrDenominationMismatch)
	}

	st.acc.Withdraw(bundle)

	receipt, err := receipts.NewReceipt(amount, bundle)
	if err != nil {
		s.log.Error("receipts.NewReceipt", slog.Any("error", err))
	} else {
		s.log.Info("cash dispensed",
			slog.String("receipt", receipt.ID()),
			slog.Int64("amount", receipt.Amount()),
			slog.Int("notes", bundle.TotalNotes()),
		)
	}

	s.stats.ShowStats(s.statsLines(st.acc))
	s.flashLocked(fmt.Sprintf("dispensed %d", amount))

	return nil
}

func (s *Session) rejectLocked(sig errmsg.TermError) error {
	s.flashLocked(sig.Text)

	return sig
}

func (s *Session) statsLines(acc *account.Account) []string {
	cumulative := acc.Notes()

	lines := make([]string, 0, s.vault.Set().Len()+1)
	for _, d := range s.vault.Set().Denominations() {
		lines = append(lines, fmt.Sprintf("%d x %d", d.Value(), cumulative.Count(d)))
	}

	return append(lines, fmt.Sprintf("Total withdrawn: %d", acc.Withdrawn()))
}

// flashLocked shows a transient message and schedules the revert to the
// persistent status. Only one flash is ever outstanding: while flashing
// is set, every event that could start another is rejected up front.
func (s *Session) flashLocked(text string) {
	s.flashing = true
	s.display.ShowStatus(text)

	s.schedule(s.flashFor, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.flashing = false
		s.display.ShowStatus(s.state.status())
	})
}
