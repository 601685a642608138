//go:generate go run github.com/valyala/quicktemplate/qtc -dir=views

package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bios-Marcel/join/account"
	"github.com/Bios-Marcel/join/avatar"
	"github.com/Bios-Marcel/join/blobstore"
	"github.com/Bios-Marcel/join/config"
	"github.com/Bios-Marcel/join/logging"
	"github.com/Bios-Marcel/join/repository"
	"github.com/Bios-Marcel/join/session"
	"github.com/boltdb/bolt"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func run(cfg *config.Config, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Durable sessions, and the emulated store if enabled, live in the
	// bolt file. It will be created if it doesn't exist.
	db, err := bolt.Open(cfg.BoltPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return err
	}
	defer db.Close()

	durable, err := session.NewBoltStore(db)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	storeURL := cfg.StoreURL
	router := chi.NewRouter()
	if cfg.EmulateStore {
		backend, err := blobstore.NewBoltBackend(db)
		if err != nil {
			return err
		}
		router.Mount("/item", blobstore.NewServer(backend, cfg.StoreToken, logger))
		storeURL = "http://" + loopback(listener.Addr()) + "/item"
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	client := blobstore.NewClient(storeURL, cfg.StoreToken, cfg.StoreTimeout, logger)
	a := &app{
		store:     client,
		durable:   durable,
		ephemeral: session.NewMemoryStore(),
		accounts:  account.New(avatar.New(nil), nil, logger),
		log:       logger.Named("web"),
		now:       func() time.Time { return time.Now().In(loc) },
	}
	a.mount(router)

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Infow("server listening", "addr", listener.Addr().String(), "store", storeURL)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warnw("server shutdown", "error", err)
		}
		return nil
	})

	if cfg.SeedGuest {
		if err := a.accounts.EnsureGuest(ctx, repository.New(client, logger)); err != nil {
			logger.Errorw("failed to seed guest account", "error", err)
		}
	}

	return group.Wait()
}

// loopback turns a listen address into one the process can dial itself.
func loopback(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
