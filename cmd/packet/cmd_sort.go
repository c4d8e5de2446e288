package main

import (
	"bytes"
	"context"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/packet"
)

type cmdSort struct {
	reverse bool
	color   string
}

func (*cmdSort) help() *commandHelp {
	return &commandHelp{
		usage:   "sort [FILE]",
		summary: "Sort packets (one per line) by packet order",
		args:    cobra.MaximumNArgs(1),
	}
}

func (cmd *cmdSort) flags(flags *pflag.FlagSet) {
	flags.BoolVarP(&cmd.reverse, "reverse", "r", false, "sort in descending order")
	flags.StringVar(&cmd.color, "color", "auto", "colorize output: auto, always or never")
}

func (cmd *cmdSort) run(_ context.Context, e *env, argv []string) int {
	log := e.logger()

	data, name, err := readInput(e, argv)
	if err != nil {
		return e.failf("%v", err)
	}
	nodes, err := packet.DecodeAll(bytes.NewReader(data), e.parseOptions())
	if err != nil {
		return e.failf("%s: %v", name, err)
	}

	packet.SortStable(nodes)
	if cmd.reverse {
		slices.Reverse(nodes)
	}
	log.Debug("sorted packets", "input", name, "count", len(nodes), "reverse", cmd.reverse)

	colored, err := useColor(cmd.color, e.stdout)
	if err != nil {
		return e.failf("%v", err)
	}
	out, err := formatText(nodes, &packet.FormatOptions{Color: colored})
	if err != nil {
		return e.failf("%v", err)
	}
	if _, err := e.stdout.Write(out); err != nil {
		return e.failf("%v", err)
	}
	return 0
}
