package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/setanarut/pixelkernel/config"
	"github.com/setanarut/pixelkernel/logging"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string
	workers    int
	outDir     string

	cfg *config.Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pixelkernel",
		Short:         "Tone remapping, rank filtering, line opening and hole filling for images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "pixelkernel.yaml", "YAML file with default parameters")
	pf.StringVar(&a.logLevel, "log-level", "", "logging level: debug, info, warn, error")
	pf.IntVar(&a.workers, "workers", 0, "number of files processed in parallel")
	pf.StringVar(&a.outDir, "out-dir", "", "output directory (default: next to each input)")

	root.AddCommand(
		newEqualizeCmd(a),
		newRankCmd(a),
		newOpenCmd(a),
		newFillCmd(a),
		newInspectCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", a.configPath, err)
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.log = logging.NewConsole(level)
	return nil
}
