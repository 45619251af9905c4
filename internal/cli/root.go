// Package cli defines the cobra command tree for clawfetch.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/openclaw/clawfetch/internal/config"
	"github.com/openclaw/clawfetch/internal/driver"
	"github.com/openclaw/clawfetch/internal/notify"
	"github.com/openclaw/clawfetch/internal/parse"
	"github.com/openclaw/clawfetch/internal/snapshot"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	panelMode  bool
	notifyFlag bool
	outputPath string
	binaryName string
	configPath string
)

// rootCmd is the top-level clawfetch command. It runs the whole
// fetch-parse-persist cycle; only a fully completed cycle exits 0.
var rootCmd = &cobra.Command{
	Use:   "clawfetch",
	Short: "Fetch Claude usage and persist it for the OpenClaw pet",
	Long: `clawfetch drives the claude CLI, scrapes the current 5-hour usage
percentage out of its output, and writes a JSON snapshot to
~/.openclaw-pet/real-usage.json for the OpenClaw desktop pet to display.

Three capture strategies run in order until one produces output: an
interactive pseudo-terminal session, plain stdin/stdout pipes, and (on
macOS) Terminal automation via osascript. The snapshot file is fully
overwritten on each successful run; nothing is written on failure.`,
	Example: `  # Fetch once and update the snapshot
  clawfetch

  # Show progress while fetching
  clawfetch --verbose

  # Emit a status-bar JSON object (HyprPanel/Waybar custom module)
  clawfetch --panel`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress to stderr")
	rootCmd.Flags().BoolVar(&panelMode, "panel", false, "print a status-bar JSON object on stdout")
	rootCmd.Flags().BoolVar(&notifyFlag, "notify", false, "send a desktop notification after updating")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "snapshot path (default ~/.openclaw-pet/real-usage.json)")
	rootCmd.Flags().StringVar(&binaryName, "binary", "", "claude binary to drive (default \"claude\")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.Path(), "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func logf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func runFetch(ctx context.Context) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	if binaryName != "" {
		cfg.Binary = binaryName
	}
	if outputPath == "" {
		outputPath = cfg.OutputPath
	}
	if outputPath == "" {
		outputPath = snapshot.DefaultPath()
	}

	drivers := []driver.Driver{
		&driver.Session{
			Binary:          cfg.Binary,
			PromptTimeout:   cfg.PromptTimeout(),
			ResponseTimeout: cfg.ResponseTimeout(),
			Logf:            logf,
		},
		&driver.Pipe{
			Binary:  cfg.Binary,
			Timeout: cfg.DriverTimeout(),
			Logf:    logf,
		},
		&driver.Terminal{
			Binary:  cfg.Binary,
			Timeout: cfg.DriverTimeout(),
			Logf:    logf,
		},
	}

	output, err := driver.FirstOutput(ctx, drivers, logf)
	if err != nil {
		if errors.Is(err, driver.ErrExhausted) {
			return fail(formatPanelFailure(nil), "failed to fetch usage: make sure %s is installed and you are logged in (try running it manually first)", cfg.Binary)
		}
		return err
	}

	percentage, ok := parse.Percentage(output)
	if !ok {
		if authErr := parse.DetectAuthError(output); authErr != nil {
			return fail(formatPanelAuthError(authErr), "could not read usage: %s", authErr.Message)
		}
		return fail(formatPanelFailure(nil), "could not parse a usage percentage from %s output", cfg.Binary)
	}

	snap := snapshot.Build(percentage, time.Now(), cfg.Subscription)
	if err := snapshot.Save(outputPath, snap); err != nil {
		return err
	}
	logf("usage updated to %d%%", percentage)
	logf("saved to %s (resets at %s)", outputPath, snap.ResetAt)

	if (notifyFlag || cfg.Notify) && notify.Supported() {
		if err := notify.UsageUpdated(percentage); err != nil {
			logf("notification: %v", err)
		}
	}

	if panelMode {
		return printPanel(formatPanelUsage(percentage))
	}
	if !verbose {
		fmt.Printf("usage updated to %d%%\n", percentage)
	}
	return nil
}

// fail prints the panel object in panel mode, then returns the diagnostic
// as the command error so the process exits non-zero.
func fail(panel PanelOutput, format string, args ...any) error {
	if panelMode {
		if err := printPanel(panel); err != nil {
			return err
		}
	}
	return fmt.Errorf(format, args...)
}

func printPanel(p PanelOutput) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
