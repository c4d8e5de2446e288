// Command packet parses, compares, formats and lints nested integer lists.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/packet"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, e *env, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
	args    cobra.PositionalArgs
}

// env carries the streams and global options shared by all commands.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	verbose  bool
	strict   bool
	maxDepth int
}

// parseOptions returns parser options from the global flags.
func (e *env) parseOptions() *packet.ParseOptions {
	return &packet.ParseOptions{Strict: e.strict, MaxDepth: e.maxDepth}
}

// failf prints an error message and returns exit code 1.
func (e *env) failf(format string, args ...any) int {
	fmt.Fprintf(e.stderr, format+"\n", args...)
	return 1
}

func main() {
	e := &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(execute(context.Background(), e, os.Args[1:]))
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, e *env, args []string) int {
	exitCode := 0

	rootCmd := &cobra.Command{
		Use:           "packet [options] COMMAND",
		Short:         "Parse, compare, format and lint nested integer lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetIn(e.stdin)
	rootCmd.SetOut(e.stdout)
	rootCmd.SetErr(e.stderr)
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		fmt.Fprint(e.stderr, cmd.UsageString())
		exitCode = 1
		return nil
	}

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVarP(&e.verbose, "verbose", "v", false, "log debug messages to stderr")
	pflags.BoolVar(&e.strict, "strict", false, "reject characters other than brackets, digits, signs and commas")
	pflags.IntVar(&e.maxDepth, "max-depth", 0, "maximum list nesting depth (0 = unlimited)")

	commands := []command{
		&cmdCompare{},
		&cmdFormat{},
		&cmdSort{},
		&cmdLint{},
	}
	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			Args:  help.args,
			RunE: func(cc *cobra.Command, args []string) error {
				exitCode = cmd.run(cc.Context(), e, args)
				return nil
			},
		}
		cmd.flags(cobraCmd.Flags())
		rootCmd.AddCommand(cobraCmd)
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(e.stderr, err)
		return 2
	}

	return exitCode
}
