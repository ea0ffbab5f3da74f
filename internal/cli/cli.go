package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// CLI exposes the streams commands read from and write to, so tests can
// swap them for buffers.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *slog.Logger
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *CLI {
	return &CLI{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

// Output writes a line to Stdout.
func (c *CLI) Output(format string, args ...interface{}) {
	fmt.Fprintf(c.Stdout, format+"\n", args...)
}

var errNotInteractive = errors.New("prompting requires a terminal; pass the values as flags")

// surveyIO returns the prompt streams, or an error when the CLI is not
// attached to a terminal.
func (c *CLI) surveyIO() (survey.AskOpt, error) {
	in, ok := c.Stdin.(terminal.FileReader)
	if !ok {
		return nil, errNotInteractive
	}
	out, ok := c.Stdout.(terminal.FileWriter)
	if !ok {
		return nil, errNotInteractive
	}
	return survey.WithStdio(in, out, c.Stderr), nil
}

// Run executes the signup command line with args.
func Run(ctx context.Context, args ...string) error {
	cli := newCLI(os.Stdin, os.Stdout, os.Stderr)
	cmd := NewRootCmd(cli)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd(cli *CLI) *cobra.Command {
	root := &cobra.Command{
		Use:           "signup",
		Short:         "Create a jobtrack account from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(cli.Stdin)
	root.SetOut(cli.Stdout)
	root.SetErr(cli.Stderr)

	root.AddCommand(newRegisterCmd(cli))
	root.AddCommand(newStrengthCmd(cli))
	return root
}
