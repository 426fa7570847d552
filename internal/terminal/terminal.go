package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/andymarkow/cashpoint/internal/atm/session"
	"github.com/andymarkow/cashpoint/internal/errmsg"
)

// Reader turns raw keystrokes into session events: '0'-'9' enter a
// digit, backspace or DEL removes one, newline confirms. Everything
// else is ignored.
type Reader struct {
	log     *slog.Logger
	session *session.Session
	in      io.Reader
}

func NewReader(sess *session.Session, opts ...Option) *Reader {
	reader := &Reader{
		log:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		session: sess,
		in:      os.Stdin,
	}

	for _, opt := range opts {
		opt(reader)
	}

	return reader
}

type Option func(r *Reader)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.log = logger
	}
}

func WithInput(in io.Reader) Option {
	return func(r *Reader) {
		r.in = in
	}
}

// Run processes keystrokes until the input ends or the context is
// canceled. Terminal signals are expected during normal use and only
// logged at debug level.
func (r *Reader) Run(ctx context.Context) error {
	in := bufio.NewReader(r.in)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		c, err := in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("in.ReadByte: %w", err)
		}

		var sigErr error

		switch {
		case c >= '0' && c <= '9':
			sigErr = r.session.Digit(c)

		case c == '\b' || c == 0x7f:
			sigErr = r.session.Backspace()

		case c == '\n':
			sigErr = r.session.Confirm(ctx)

		default:
			continue
		}

		var sig errmsg.TermError
		if errors.As(sigErr, &sig) {
			r.log.Debug("terminal signal", slog.String("signal", sig.Error()))
		} else if sigErr != nil {
			return fmt.Errorf("session event: %w", sigErr)
		}
	}
}
