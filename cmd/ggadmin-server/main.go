// Ggadmin-server is a demo content backend for the ggadmin client.
//
// It serves the record catalog and edit forms over HTTP, validates
// submissions, and pushes validation results to connected clients over
// WebSocket. The server can announce itself over mDNS so clients find it
// without configuration.
//
// Usage:
//
//	ggadmin-server serve [flags]
//
// See 'ggadmin-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogevgelija/ggadmin/internal/server"
	"github.com/gogevgelija/ggadmin/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ggadmin-server",
	Short: "GoGevgelija Admin Backend",
	Long: `A standalone content backend for the ggadmin terminal client.

Serves the record catalog and multilingual edit forms over HTTP, validates
submissions, and streams validation events to clients over WebSocket.

Note: For editing content, use the separate 'ggadmin' client.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	certPath string
	keyPath  string
	host     string
	port     int
	name     string
	logLevel string
	announce bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the backend",
	Long: `Start the ggadmin backend with sample Gevgelija content.

By default the backend announces itself over mDNS so clients on the local
network discover it automatically. Provide --cert and --key to serve TLS.`,
	Example: `  # Start on the default port with mDNS announcement
  ggadmin-server serve

  # Custom port, verbose logging
  ggadmin-server serve --port 8700 --log-level debug

  # TLS with your own certificates
  ggadmin-server serve --cert fullchain.pem --key privkey.pem

  # Without mDNS announcement
  ggadmin-server serve --announce=false`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&certPath, "cert", "", "Path to TLS certificate file (optional)")
	serveCmd.Flags().StringVar(&keyPath, "key", "", "Path to TLS private key file (optional)")
	serveCmd.Flags().StringVar(&host, "host", "", "Listen hostname (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", 8600, "Listen port")
	serveCmd.Flags().StringVar(&name, "name", "ggadmin-backend", "mDNS instance name")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&announce, "announce", true, "Announce the backend over mDNS")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Either both cert and key, or neither
	if (certPath != "" && keyPath == "") || (certPath == "" && keyPath != "") {
		return fmt.Errorf("both --cert and --key must be provided together, or neither")
	}
	if certPath != "" {
		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			return fmt.Errorf("certificate file not found: %s", certPath)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			return fmt.Errorf("private key file not found: %s", keyPath)
		}
	}

	srv, err := server.New(&server.Config{
		Host:     host,
		Port:     port,
		Name:     name,
		CertPath: certPath,
		KeyPath:  keyPath,
		LogLevel: logLevel,
		Announce: announce,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ggadmin-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
