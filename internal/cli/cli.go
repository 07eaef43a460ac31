// Package cli implements the enumq command line tool.
//
// enumq runs the query pipeline of pkg/linq over JSON or YAML documents:
//
//	enumq query --distinct --take 3 data.yaml
//	enumq query --union more.json --op count -
//	enumq classify data.yaml
//
// Configuration comes from flags, ENUMQ_* environment variables and the config file,
// in this order of precedence. Logs are written to the error output.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/enumkit/enumkit/pkg/errorkit"
)

const (
	// ExitCodeOK : Success
	ExitCodeOK = 0
	// ExitCodeError : General Error
	ExitCodeError = 1
	// ExitCodeBadRequest : Misuse of shell builtins or invalid command-line usage, often equated with a bad request.
	ExitCodeBadRequest = 2
)

// ErrBadRequest marks errors caused by the invocation rather than by the data.
const ErrBadRequest errorkit.Error = "bad request"

// Main runs enumq with the given arguments and returns the process exit code.
// Errors are logged once, here.
func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		config: viper.New(),
		log:    zerolog.New(errOut).With().Timestamp().Logger(),
	}

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		a.log.Error().Err(err).Msg("enumq failed")
		return exitCode(err)
	}
	return ExitCodeOK
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeOK
	case errors.Is(err, ErrBadRequest), errors.Is(err, errorkit.ErrInvalidArgument):
		return ExitCodeBadRequest
	default:
		return ExitCodeError
	}
}

// app holds the state of one enumq invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	config *viper.Viper
	log    zerolog.Logger
}

func badArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return ErrBadRequest.Wrap(err)
		}
		return nil
	}
}
