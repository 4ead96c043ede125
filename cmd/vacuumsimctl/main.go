// vacuumsimctl is a CLI client for vacuumsimd's HTTP query/command API.
package main

import (
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/banshee-data/vacuumsim/internal/httputil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit is a sentinel error returned by cobra RunE functions to signal a
// non-zero exit after the command has already written its own error.
var errExit = errors.New("exit")

// serverFlag holds the --server persistent flag value.
var serverFlag string

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "vacuumsimctl",
		Short:         "CLI client for the vacuum cleaning simulator's HTTP API",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&serverFlag, "server", "http://localhost:8090",
		"base URL of a running vacuumsimd instance")

	root.AddCommand(
		newStatusCmd(stdout, stderr),
		newEnvironmentCmd(stdout, stderr),
		newStatisticsCmd(stdout, stderr),
		newSLAMCmd(stdout, stderr),
		newCoverageMapCmd(stdout, stderr),
		newPathCmd(stdout, stderr),
		newModesCmd(stdout, stderr),
		newRoomTypesCmd(stdout, stderr),
		newHealthCmd(stdout, stderr),
		newRunsCmd(stdout, stderr),
		newStartCmd(stdout, stderr),
		newStopCmd(stdout, stderr),
		newReturnToDockCmd(stdout, stderr),
		newInitCmd(stdout, stderr),
		newStepCmd(stdout, stderr),
		newResetCmd(stdout, stderr),
	)
	return root
}

var httpClient httputil.HTTPClient = httputil.NewStandardClient(&http.Client{Timeout: 10 * time.Second})
