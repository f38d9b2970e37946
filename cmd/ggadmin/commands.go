package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
	"github.com/gogevgelija/ggadmin/internal/config"
	"github.com/gogevgelija/ggadmin/internal/discovery"
	"github.com/gogevgelija/ggadmin/internal/tui"
	"github.com/gogevgelija/ggadmin/internal/ui"
	"github.com/gogevgelija/ggadmin/internal/urls"
)

// Command flags
var (
	backendURL   string
	scanTimeout  int
	outputFormat string
)

func init() {
	// Common flags (persistent on root)
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend base URL (skips discovery)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")

	// Add subcommands directly to root
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(setLanguageCmd)
}

// scanCmd discovers backends on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for ggadmin backends on the network",
	Long: `Scan for ggadmin backends using mDNS/DNS-SD discovery.

This command listens for mDNS announcements from ggadmin backends and
displays all discovered instances with their addresses.`,
	Example: `  # Scan for 10 seconds (default)
  ggadmin scan

  # Quick 3-second scan
  ggadmin scan --timeout 3`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 10, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Backend Discovery", "ggadmin scan", map[string]string{
		"Timeout": fmt.Sprintf("%ds", scanTimeout),
	})
	printer.Newline()

	backends, err := discovery.ScanForBackends(time.Duration(scanTimeout) * time.Second)
	if err != nil {
		printer.PrintError("Backend Discovery", err, []string{
			"Check that the backend is running (ggadmin-server serve --announce)",
			"Verify this machine is on the same network as the backend",
			"Use --backend to specify the URL manually if discovery fails",
		})
		return nil
	}

	printer.Print(ui.RenderBackends(backends))
	printer.Newline()

	if len(backends) > 0 {
		printer.Println("Use 'ggadmin show --backend <url>' to view the catalog")
		printer.Println("Use 'ggadmin edit' for the interactive editor")
	}
	return nil
}

// showCmd displays the catalog or one record
var showCmd = &cobra.Command{
	Use:   "show [form-id]",
	Short: "Show the backend catalog or one record",
	Long: `Display the backend's record catalog, or the full form for one
record when a form ID is given.`,
	Example: `  # Show the catalog
  ggadmin show --backend http://192.168.1.50:8600

  # Show one record's form
  ggadmin show listing/1 --backend http://192.168.1.50:8600

  # JSON output for scripting
  ggadmin show listing/1 --backend http://192.168.1.50:8600 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	url, err := resolveBackendURL()
	if err != nil {
		return err
	}
	client := adminapi.NewClient(url)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	printer := ui.NewPrinter(cmd.OutOrStdout())

	if len(args) == 0 {
		catalog, err := client.GetCatalog(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch catalog: %w", err)
		}
		if outputFormat == "json" {
			return printJSON(printer, catalog)
		}
		printer.PrintHeader("Catalog", "ggadmin show", map[string]string{"Backend": url})
		printer.Newline()
		printer.Print(ui.RenderCatalog(catalog))
		return nil
	}

	f, err := client.GetForm(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch form %q: %w", args[0], err)
	}
	if outputFormat == "json" {
		return printJSON(printer, f)
	}
	printer.PrintHeader("Record", "ggadmin show "+args[0], map[string]string{"Backend": url})
	printer.Newline()
	printer.Print(ui.RenderForm(f))
	return nil
}

func printJSON(printer *ui.Printer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	printer.Println(string(data))
	return nil
}

// editCmd launches the interactive TUI editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Launch the interactive editor",
	Long: `Launch the interactive TUI editor.

The editor provides:
- Backend discovery on the local network
- A record catalog
- A form editor with language tabs for multilingual content

Translated field groups are bucketed by language into a tab strip. The last
chosen language is remembered between sessions, and alt+1/alt+2/... switch
languages directly.`,
	Example: `  # Launch with backend discovery
  ggadmin edit
  # Or simply (edit is default):
  ggadmin

  # Launch against a specific backend
  ggadmin edit --backend http://192.168.1.50:8600
  ggadmin --backend http://192.168.1.50:8600`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if backendURL != "" {
		// Verify the backend answers before entering the editor
		client := adminapi.NewClient(backendURL)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if _, err := client.GetCatalog(ctx); err != nil {
			return fmt.Errorf("failed to connect to backend at %s: %w", backendURL, err)
		}
	}

	if err := tui.Run(registry, backendURL); err != nil {
		return fmt.Errorf("editor error: %w", err)
	}
	return nil
}

// setLanguageCmd directly sets the default form language
var setLanguageCmd = &cobra.Command{
	Use:   "set-language <code>",
	Short: "Set the default form language",
	Long: `Set the language tab activated when no previous choice is stored.

The code must be one of the configured form languages (see the languages
list in the config file). Codes are canonicalized, so "EN" and "en-GB"
both resolve to "en".`,
	Example: `  # Default to Macedonian
  ggadmin set-language mk

  # Default to English
  ggadmin set-language en`,
	Args: cobra.ExactArgs(1),
	RunE: runSetLanguage,
}

func runSetLanguage(cmd *cobra.Command, args []string) error {
	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	code, err := config.NormalizeLanguageCode(args[0])
	if err != nil {
		return err
	}
	lang, ok := registry.LanguageByCode(code)
	if !ok {
		codes := make([]string, 0, len(registry.Languages))
		for _, l := range registry.Languages {
			codes = append(codes, l.Code)
		}
		return fmt.Errorf("language %q is not configured (configured: %s), see %s",
			code, strings.Join(codes, ", "), urls.LanguageSetup)
	}

	registry.Preferences.DefaultLanguage = code
	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("Default language set to %s (%s)\n", lang.Name, lang.Code)
	return nil
}

// resolveBackendURL returns the --backend flag or discovers a single backend
func resolveBackendURL() (string, error) {
	if backendURL != "" {
		return backendURL, nil
	}

	fmt.Println("No --backend given, scanning the network...")
	backends, err := discovery.ScanForBackends(time.Duration(scanTimeout) * time.Second)
	if err != nil {
		return "", fmt.Errorf("discovery failed: %w", err)
	}
	if len(backends) == 0 {
		return "", fmt.Errorf("no backends found; use --backend to specify the URL")
	}
	if len(backends) > 1 {
		return "", fmt.Errorf("found %d backends; use --backend to pick one", len(backends))
	}
	return backends[0].BaseURL(), nil
}
