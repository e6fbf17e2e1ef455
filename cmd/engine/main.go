package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/celo-academy/academy-engine/internal/adapter"
	"github.com/celo-academy/academy-engine/internal/api/middleware"
	"github.com/celo-academy/academy-engine/internal/api/server"
	"github.com/celo-academy/academy-engine/internal/config"
	"github.com/celo-academy/academy-engine/internal/enrollment"
	"github.com/celo-academy/academy-engine/internal/executor"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/oracle"
	"github.com/celo-academy/academy-engine/internal/relay"
	"github.com/celo-academy/academy-engine/internal/session"
	"github.com/celo-academy/academy-engine/internal/sponsorship"
	"github.com/celo-academy/academy-engine/internal/store"
	"github.com/celo-academy/academy-engine/internal/syncer"
	"github.com/celo-academy/academy-engine/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadEngineConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "academy-engine",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Academy engine", zap.String("chain", string(cfg.Relay.Chain)))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	mirror := store.NewPGStore(db)
	sessionStore := store.NewSessionStore(mirror)
	clock := adapter.NewClock()

	// Load the sponsorship allow-list
	registry := sponsorship.Default()
	if cfg.SponsorshipMap != "" {
		registry, err = sponsorship.Load(cfg.SponsorshipMap)
		if err != nil {
			logger.Fatal("Failed to load sponsorship map",
				zap.Error(err),
				zap.String("path", cfg.SponsorshipMap))
		}
		logger.InfoCtx(ctx, "Loaded sponsorship map", zap.String("path", cfg.SponsorshipMap))
	}

	// Chain read client
	caller, err := adapter.DialEthCaller(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.Fatal("Failed to dial RPC endpoint", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer caller.Close()

	orc, err := oracle.New(caller, clock, cfg.Chain)
	if err != nil {
		logger.Fatal("Failed to create completion oracle", zap.Error(err))
	}

	// Relay client and account factory. The relay transport does not
	// retry on its own; the session manager owns retry timing.
	relayHTTP := adapter.NewHTTPClient(cfg.Relay.HTTPTimeout, 0)
	relayClient, err := relay.NewClient(cfg.Relay, relayHTTP)
	if err != nil {
		logger.Fatal("Failed to create relay client", zap.Error(err))
	}
	factory := relay.NewAccountFactory(relayClient)

	// Wallet sidecar
	walletHTTP := adapter.NewHTTPClient(cfg.Wallet.HTTPTimeout, 0)
	auth := wallet.NewRemoteAuthenticator(cfg.Wallet.ProviderURL, walletHTTP)

	// Session manager
	sessions := session.NewManager(auth, factory, sessionStore, clock, cfg.Session)
	if err := sessions.Init(ctx); err != nil {
		logger.WarnCtx(ctx, "Initial session bootstrap failed", zap.Error(err))
	}
	defer sessions.Dispose()

	// Sponsored executor, mirror sync, course actions
	exec := executor.New(sessions, clock, cfg.Sync)
	syncHTTP := adapter.NewHTTPClient(cfg.Sync.HTTPTimeout, 0)
	mirrorClient := syncer.NewMirrorClient(cfg.Sync, syncHTTP)
	sync := syncer.New(mirrorClient, orc, clock, cfg.Sync.SettleDelay)

	courses := enrollment.NewService(
		enrollment.Config{
			Chain:           cfg.Relay.Chain,
			ContractAddress: cfg.Chain.ContractAddress,
		},
		sessions, auth, registry, exec, orc, sync, mirror,
	)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Chain:        cfg.Relay.Chain,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, mirror, courses, sessions, exec, orc, registry)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight reconciliation loops finish before exit
	sync.Wait()

	logger.Info("Academy engine stopped")
}
