package operations

import (
	"fmt"
	"os"

	"github.com/speakeasy-api/openapi-clientgen/loader"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/spf13/cobra"
)

// ErrDocumentArgs is returned when the positional arguments do not name exactly one Swagger document.
const ErrDocumentArgs = errors.Error("invalid document arguments")

// documentArgs accepts a single document path, or none when the document is piped to stdin.
func documentArgs(piped func() bool) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch {
		case len(args) == 1:
			return nil
		case len(args) == 0 && piped():
			return nil
		case len(args) == 0:
			return ErrDocumentArgs.Wrap(errors.New("expected a Swagger document path or a document piped to stdin"))
		default:
			return ErrDocumentArgs.Wrap(fmt.Errorf("expected one Swagger document, received %d", len(args)))
		}
	}
}

// stdinIsPiped reports whether stdin is a pipe or file rather than a terminal.
func stdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

func documentPath(args []string) string {
	if len(args) == 0 {
		return loader.StdinIndicator
	}
	return args[0]
}

func readsStdin(path string) bool {
	return path == loader.StdinIndicator
}

// exit reports err on the command's error stream and terminates the process.
func exit(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	os.Exit(1)
}
