package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/packet"
)

type cmdLint struct {
	noStray     bool
	noSeparator bool
}

func (*cmdLint) help() *commandHelp {
	return &commandHelp{
		usage:   "lint [FILE]",
		summary: "Report malformed and non-canonical packets (one per line); --strict makes stray characters errors",
		args:    cobra.MaximumNArgs(1),
	}
}

func (cmd *cmdLint) flags(flags *pflag.FlagSet) {
	flags.BoolVar(&cmd.noStray, "no-stray", false, "do not report ignored characters")
	flags.BoolVar(&cmd.noSeparator, "no-separator", false, "do not report missing or extra commas")
}

func (cmd *cmdLint) run(_ context.Context, e *env, argv []string) int {
	log := e.logger()

	data, name, err := readInput(e, argv)
	if err != nil {
		return e.failf("%v", err)
	}

	opt := &packet.LintOptions{
		DisableStrayCheck:     cmd.noStray,
		DisableSeparatorCheck: cmd.noSeparator,
		MaxDepth:              e.maxDepth,
		Strict:                e.strict,
	}

	var warnings, errs int
	for i, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		for _, it := range packet.Lint(line, opt) {
			it.Line += i
			fmt.Fprintf(e.stdout, "%s:%s\n", name, it)
			switch it.Level {
			case packet.IssueError:
				errs++
			case packet.IssueWarning:
				warnings++
			}
		}
	}
	log.Debug("lint finished", "input", name, "warnings", warnings, "errors", errs)

	if errs > 0 {
		return 1
	}
	return 0
}
