package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/gogevgelija/ggadmin/internal/discovery"
	"github.com/gogevgelija/ggadmin/internal/logging"
)

// Config holds the backend configuration
type Config struct {
	Host     string
	Port     int
	Name     string // mDNS instance name (default "ggadmin-backend")
	CertPath string // Path to certificate file (optional; enables TLS)
	KeyPath  string // Path to private key file (optional; enables TLS)
	LogLevel string
	Announce bool // Announce the backend over mDNS
}

// Server is the demo admin backend: HTTP API, WebSocket event hub, optional
// mDNS announcement.
type Server struct {
	config   *Config
	store    *Store
	hub      *Hub
	http     *http.Server
	announce *zeroconf.Server
}

// New creates a new Server instance over the given store.
func New(config *Config, store *Store) (*Server, error) {
	// Initialize logging
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if config.Name == "" {
		config.Name = "ggadmin-backend"
	}
	if store == nil {
		store = NewStore(nil)
		store.SeedSampleData()
	}

	s := &Server{
		config: config,
		store:  store,
		hub:    NewHub(),
	}
	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      s.newMux(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s, nil
}

// Start starts the backend and blocks until shutdown.
func (s *Server) Start() error {
	useTLS := s.config.CertPath != "" && s.config.KeyPath != ""

	logging.Info("Starting ggadmin backend",
		zap.String("addr", s.http.Addr),
		zap.Bool("tls", useTLS),
		zap.Bool("announce", s.config.Announce),
		zap.String("log_level", s.config.LogLevel),
	)

	if s.config.Announce {
		announce, err := zeroconf.Register(
			s.config.Name,
			discovery.ServiceType,
			discovery.ServiceDomain,
			s.config.Port,
			[]string{"path=/api", "proto=1"},
			nil,
		)
		if err != nil {
			// Discovery is a convenience; the backend still works by URL
			logging.Warn("mDNS announcement failed", zap.Error(err))
		} else {
			s.announce = announce
			logging.Info("Announced backend over mDNS",
				zap.String("instance", s.config.Name),
				zap.String("service", discovery.ServiceType),
			)
		}
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		var err error
		if useTLS {
			err = s.http.ListenAndServeTLS(s.config.CertPath, s.config.KeyPath)
		} else {
			err = s.http.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case sig := <-sigChan:
		logging.Info("Received shutdown signal", zap.String("signal", sig.String()))
		return s.Shutdown()
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

// Shutdown stops the backend gracefully: mDNS goes first so clients stop
// finding us, then subscribers are disconnected, then the HTTP server
// drains.
func (s *Server) Shutdown() error {
	if s.announce != nil {
		s.announce.Shutdown()
	}
	s.hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logging.Info("Backend stopped")
	return nil
}
