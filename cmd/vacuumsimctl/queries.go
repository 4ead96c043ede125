package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newQueryCmd(stdout, stderr io.Writer, use, short, path string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if doGet(stdout, stderr, path) != 0 {
				return errExit
			}
			return nil
		},
	}
}

func newStatusCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "status", "Show the robot's pose, battery, and state", "/status")
}

func newEnvironmentCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "environment", "Show environment layout statistics", "/environment")
}

func newStatisticsCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "statistics", "Show accumulated run statistics", "/statistics")
}

func newSLAMCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "slam", "Show the SLAM map, pose estimate, and particle count", "/slam")
}

func newCoverageMapCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "coverage-map", "Show the static cell map and dirt overlay", "/coverage-map")
}

func newPathCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "path", "Show the active planned path", "/path")
}

func newModesCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "modes", "List available cleaning modes", "/modes")
}

func newRoomTypesCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "room-types", "List available room types", "/room-types")
}

func newHealthCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "health", "Check server health", "/health")
}

func newRunsCmd(stdout, stderr io.Writer) *cobra.Command {
	return newQueryCmd(stdout, stderr, "runs", "List recorded simulation runs", "/runs")
}
