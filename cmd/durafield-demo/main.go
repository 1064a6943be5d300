package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/durafield"
)

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "durafield-demo",
		Short: "Interactive demo of the durafield duration input",
		Long: `Runs two duration fields in the terminal.

Settings come from an optional YAML file (--config); flags override it.

Examples:
  # Work days of 8 hours, days and hours only
  durafield-demo --units days,hours --hours-per-day 8

  # Start with a value and write debug logs
  durafield-demo --value PT1H30M --log /tmp/durafield.log`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	opts.bind(cmd.PersistentFlags())

	cmd.AddCommand(newConfigCmd(opts), newVersionCmd())
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		Long:  `Prints the settings the demo would run with, after applying --config and flags. Redirect the output to start a settings file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings(cmd.Flags())
			if err != nil {
				return err
			}
			content, err := s.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the durafield version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "durafield %s\n", durafield.VersionTag())
		},
	}
}

func run(cmd *cobra.Command, opts *options) error {
	s, err := opts.settings(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := s.EditorConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	cfg.Logger = logger

	app, err := newApp(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

// openLog returns a debug logger writing to path. The terminal belongs to
// Bubble Tea, so without a path records are dropped.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
