// Package operations implements the commands that project the operations of a Swagger document.
package operations

import (
	"github.com/speakeasy-api/openapi-clientgen/logging"
	"github.com/speakeasy-api/openapi-clientgen/render"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/spf13/cobra"
)

var operationsCmd = &cobra.Command{
	Use:   "operations [file]",
	Short: "Print the operation descriptors of a Swagger 2.0 document",
	Long: `Load a Swagger 2.0 (OpenAPI v2) document and print the descriptor of every operation
as consumed by client code templates.

Each descriptor carries:
- Operation identity, names and HTTP method spellings
- The wrapped and unwrapped result types and the exception type
- Parameters grouped by location and the request body parameter
- Response flags and resolved content types

Pass "-" or pipe the document to read from stdin.`,
	Args: documentArgs(stdinIsPiped),
	Run:  runOperations,
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that every operation of a Swagger 2.0 document can be projected",
	Long: `Load a Swagger 2.0 (OpenAPI v2) document, project all of its operations and report
the malformed ones, such as operations declaring more than one body parameter.`,
	Args: documentArgs(stdinIsPiped),
	Run:  runValidate,
}

type flags struct {
	format               string
	configFile           string
	profile              string
	wrapSuccessResponses bool
	continueOnError      bool
	logLevel             string
	logFormat            string
}

var opts flags

func init() {
	for _, cmd := range []*cobra.Command{operationsCmd, validateCmd} {
		cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "path to a YAML settings file")
		cmd.Flags().StringVar(&opts.profile, "profile", string(settings.ProfileCSharp), "target profile (csharp, typescript)")
		cmd.Flags().BoolVar(&opts.wrapSuccessResponses, "wrap-success-responses", false, "wrap results in a response envelope")
		cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
		cmd.Flags().StringVar(&opts.logFormat, "log-format", string(logging.FormatText), "log format (text, json)")
	}

	operationsCmd.Flags().StringVarP(&opts.format, "format", "f", string(render.FormatYAML), "output format (yaml, json)")
	operationsCmd.Flags().BoolVar(&opts.continueOnError, "continue-on-error", false, "skip malformed operations instead of failing")
}

// Apply registers the operation commands on the provided parent command.
func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(operationsCmd)
	rootCmd.AddCommand(validateCmd)
}

func runOperations(cmd *cobra.Command, args []string) {
	processor, err := newProcessor(cmd, args)
	if err != nil {
		exit(cmd, err)
	}

	if err := processor.WriteOperations(cmd.Context(), render.Format(opts.format)); err != nil {
		exit(cmd, err)
	}
}

func runValidate(cmd *cobra.Command, args []string) {
	processor, err := newProcessor(cmd, args)
	if err != nil {
		exit(cmd, err)
	}

	if err := processor.Validate(cmd.Context()); err != nil {
		exit(cmd, err)
	}
}

func newProcessor(cmd *cobra.Command, args []string) (*Processor, error) {
	s, err := ResolveSettings(opts.configFile, nil, overridesFromFlags(cmd))
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(opts.logFormat)
	if err != nil {
		return nil, err
	}

	return &Processor{
		InputFile: documentPath(args),
		Settings:  s,
		Logger:    logging.New(logging.WithLevel(level), logging.WithFormat(format), logging.WithWriter(cmd.ErrOrStderr())),
		Stdin:     cmd.InOrStdin(),
		Stdout:    cmd.OutOrStdout(),
	}, nil
}

func overridesFromFlags(cmd *cobra.Command) Overrides {
	o := Overrides{}
	if cmd.Flags().Changed("profile") {
		profile := settings.Profile(opts.profile)
		o.Profile = &profile
	}
	if cmd.Flags().Changed("wrap-success-responses") {
		o.WrapSuccessResponses = &opts.wrapSuccessResponses
	}
	if cmd.Flags().Changed("continue-on-error") {
		o.ContinueOnError = &opts.continueOnError
	}
	return o
}
