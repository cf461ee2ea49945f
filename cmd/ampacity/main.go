// Command ampacity computes conductor voltage drop, minimum sizes, maximum
// lengths, ampacity derating and conduit fill.
package main

import (
	"errors"
	"os"

	"github.com/rshade/ampacity/internal/cli"
	"github.com/rshade/ampacity/pkg/version"
)

func main() {
	os.Exit(extractExitCode(run()))
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

// extractExitCode maps a command error to the process exit status. Errors that
// carry no code exit with 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
