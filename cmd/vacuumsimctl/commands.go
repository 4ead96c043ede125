package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/banshee-data/vacuumsim/internal/security"
)

func newStartCmd(stdout, stderr io.Writer) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start (or resume) cleaning, optionally setting the cleaning mode",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			body := "{}"
			if mode != "" {
				body = fmt.Sprintf(`{"mode":%q}`, mode)
			}
			if doPost(stdout, stderr, "/start", body) != 0 {
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "cleaning mode to switch to before starting")
	return cmd
}

func newStopCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop cleaning and transition to idle",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if doPost(stdout, stderr, "/stop", "") != 0 {
				return errExit
			}
			return nil
		},
	}
}

func newReturnToDockCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "return-to-dock",
		Short: "Send the robot back to its dock",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if doPost(stdout, stderr, "/return-to-dock", "") != 0 {
				return errExit
			}
			return nil
		},
	}
}

func newInitCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Discard the current run and build a new controller from a config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			body := "{}"
			if configPath != "" {
				if err := security.ValidateExportPath(configPath); err != nil {
					fmt.Fprintf(stderr, "vacuumsimctl: %v\n", err) //nolint:errcheck // best-effort stderr
					return errExit
				}
				data, err := os.ReadFile(configPath)
				if err != nil {
					fmt.Fprintf(stderr, "vacuumsimctl: %v\n", err) //nolint:errcheck // best-effort stderr
					return errExit
				}
				body = string(data)
			}
			if doPost(stdout, stderr, "/init", body) != 0 {
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a JSON controller configuration file")
	return cmd
}

func newStepCmd(stdout, stderr io.Writer) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance the simulation by one or more ticks",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for i := 0; i < count; i++ {
				if doPost(stdout, stderr, "/step", "") != 0 {
					return errExit
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of ticks to advance")
	return cmd
}

func newResetCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Drop the current controller; the next query rebuilds it with defaults",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if doPost(stdout, stderr, "/reset", "") != 0 {
				return errExit
			}
			return nil
		},
	}
}
