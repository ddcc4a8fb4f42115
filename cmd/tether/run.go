package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/mlegeay/tether/showcase"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [panel...]",
	Short: "Run showcase panels",
	Long: `Run the named showcase panels in order.

With no arguments and no config file, every registered panel runs.
A YAML config file can select a subset instead:

  panels:
    - counter
    - burst

Example:
  tether run counter todos
  tether run --config panels.yaml
  tether run`,
	RunE: runPanels,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to a YAML panel-selection file")
}

func runPanels(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if configPath != "" && len(args) > 0 {
		return errors.New("pass panel names or --config, not both")
	}

	names := args
	switch {
	case configPath != "":
		cfg, err := showcase.LoadConfig(configPath)
		if err != nil {
			return err
		}
		names = cfg.Panels
		logger.Info("loaded panel selection", "config", configPath, "panels", len(names))
	case len(names) == 0:
		names = showcase.Names()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := showcase.Run(ctx, cmd.OutOrStdout(), names); err != nil {
		logger.Error("showcase run failed", "error", err)
		return err
	}

	return nil
}
