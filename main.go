package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/andareed/iron-ledger/logging"
	"github.com/andareed/iron-ledger/market"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type options struct {
	debugFile   string
	tick        time.Duration
	drift       float64
	seed        uint64
	watch       bool
	noColor     bool
	noAltScreen bool
}

func defaultOptions() *options {
	return &options{
		tick:  2 * time.Second,
		drift: 0.8,
		watch: true,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:   "ironledger [market.yaml|snapshot.json]",
		Short: "A steampunk stock ticker for the terminal",
		Long: `The Iron Ledger shows a fictional market of brass and steam companies.

Without arguments the built-in market is used. A .yaml/.yml file defines a
custom market (and is reloaded when it changes); a .json file restores a
snapshot saved from inside the program.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(path, opts)
		},
	}
	cmd.SetVersionTemplate("Version: {{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&opts.debugFile, "debug", "", "Write debug logs to file")
	f.DurationVar(&opts.tick, "tick", opts.tick, "Interval between price updates (0 disables)")
	f.Float64Var(&opts.drift, "drift", opts.drift, "Maximum price move per tick, in percent")
	f.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 uses the clock)")
	f.BoolVar(&opts.watch, "watch", opts.watch, "Reload the market file when it changes")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colours")
	f.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "Draw inline instead of on the alternate screen")
	return cmd
}

func run(path string, opts *options) error {
	cleanup, err := logging.SetupLogging(opts.debugFile)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	log.Println("iron-ledger: Started")

	if opts.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	m, err := loadModelAuto(path, opts)
	if err != nil {
		return err
	}
	if m.watcher != nil {
		defer m.watcher.Close()
	}

	var progOpts []tea.ProgramOption
	if !opts.noAltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		return err
	}
	return nil
}

func loadModelAuto(path string, opts *options) (*model, error) {
	if path == "" {
		return newModel(market.DefaultConfig(), opts), nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return newModelFromMarketFile(path, opts)
	case ".json":
		return newModelFromSnapshot(path, opts)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .yaml, .yml or .json)", ext)
	}
}

func newModelFromMarketFile(path string, opts *options) (*model, error) {
	cfg, err := market.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	m := newModel(cfg, opts)
	m.sourcePath = path
	if opts.watch {
		w, err := market.Watch(path)
		if err != nil {
			// the ticker still works without reloads
			logging.Warnf("Not watching %s: %v", path, err)
		} else {
			m.watcher = w
		}
	}
	return m, nil
}

// Load data from a snapshot saved earlier with SaveSnapshot.
func newModelFromSnapshot(path string, opts *options) (*model, error) {
	m := newEmptyModel(opts)
	if err := LoadSnapshot(m, path); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	m.sourcePath = path
	m.InitialiseUI()
	return m, nil
}
