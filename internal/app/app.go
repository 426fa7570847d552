package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andymarkow/cashpoint/internal/atm/session"
	"github.com/andymarkow/cashpoint/internal/config"
	"github.com/andymarkow/cashpoint/internal/display"
	"github.com/andymarkow/cashpoint/internal/domain/customers"
	"github.com/andymarkow/cashpoint/internal/domain/notes"
	"github.com/andymarkow/cashpoint/internal/domain/vault"
	"github.com/andymarkow/cashpoint/internal/httpclient"
	"github.com/andymarkow/cashpoint/internal/logger"
	"github.com/andymarkow/cashpoint/internal/pinclient"
	"github.com/andymarkow/cashpoint/internal/server"
	"github.com/andymarkow/cashpoint/internal/storage"
	"github.com/andymarkow/cashpoint/internal/storage/inmemory"
	"github.com/andymarkow/cashpoint/internal/terminal"
)

type Application struct {
	log      *slog.Logger
	server   *server.Server
	terminal *terminal.Reader
}

func New() (*Application, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("config.NewConfig: %w", err)
	}

	logLevel, err := logger.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger.ParseLogLevel: %w", err)
	}

	logg := logger.NewLogger(
		logger.WithLevel(logLevel),
		logger.WithFormat(logger.LogFormatJSON),
		logger.WithAddSource(false),
	)

	fixture, err := config.LoadFixture(cfg.FixtureFile)
	if err != nil {
		return nil, fmt.Errorf("config.LoadFixture: %w", err)
	}

	vlt, err := buildVault(fixture.Vault)
	if err != nil {
		return nil, fmt.Errorf("buildVault: %w", err)
	}

	memstore := inmemory.NewStorage()

	store := storage.NewStorage(memstore)

	if err := seedCustomers(store, fixture.Customers); err != nil {
		return nil, fmt.Errorf("seedCustomers: %w", err)
	}

	srv := server.NewServer(store,
		server.WithServerAddr(cfg.BankAddr),
		server.WithLogger(logg),
	)

	pinClient := pinclient.New(
		pinclient.WithLogger(logg),
		pinclient.WithClient(httpclient.New(httpclient.WithBaseURL(cfg.BankURI))),
	)

	sess := session.New(vlt, pinClient,
		session.WithLogger(logg),
		session.WithDisplay(display.NewConsole(os.Stdout)),
		session.WithStatsPanel(display.NewStats(os.Stdout)),
		session.WithOverdraftLimit(cfg.OverdraftLimit),
		session.WithFlashDuration(cfg.FlashDuration),
	)

	term := terminal.NewReader(sess,
		terminal.WithLogger(logg),
	)

	return &Application{
		log:      logg,
		server:   srv,
		terminal: term,
	}, nil
}

func buildVault(fixture config.VaultFixture) (*vault.Vault, error) {
	set, err := notes.NewSet(fixture.Denominations...)
	if err != nil {
		return nil, fmt.Errorf("notes.NewSet: %w", err)
	}

	stock := make(map[notes.Denomination]int, len(fixture.Stock))
	for value, count := range fixture.Stock {
		stock[notes.Denomination(value)] = count
	}

	vlt, err := vault.New(set, stock)
	if err != nil {
		return nil, fmt.Errorf("vault.New: %w", err)
	}

	return vlt, nil
}

func seedCustomers(store storage.Storage, fixtures []config.CustomerFixture) error {
	for _, f := range fixtures {
		customer, err := customers.NewCustomer(f.Pin, f.Name, decimal.NewFromInt(f.Balance))
		if err != nil {
			return fmt.Errorf("customers.NewCustomer: %w", err)
		}

		if err := store.CreateCustomer(context.Background(), customer); err != nil {
			return fmt.Errorf("store.CreateCustomer: %w", err)
		}
	}

	return nil
}

func (a *Application) Run() error {
	errChan := make(chan error, 1)
	doneChan := make(chan struct{})

	go func() {
		if err := a.server.Start(); err != nil {
			errChan <- fmt.Errorf("server.Start: %w", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := a.terminal.Run(ctx); err != nil {
			errChan <- fmt.Errorf("terminal.Run: %w", err)

			return
		}

		close(doneChan)
	}()

	// Graceful shutdown handler
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case err := <-errChan:
			return err

		case <-doneChan:
			a.log.Info("Terminal input closed, shutting down...")

			return a.shutdown()

		case <-quit:
			a.log.Info("Gracefully shutting down application...")

			cancel()

			return a.shutdown()
		}
	}
}

func (a *Application) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}

	return nil
}
