package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/packet"
)

type cmdCompare struct {
	files bool
}

func (*cmdCompare) help() *commandHelp {
	return &commandHelp{
		usage:   "compare LEFT RIGHT",
		summary: "Print whether LEFT is less than, equal to or greater than RIGHT",
		args:    cobra.ExactArgs(2),
	}
}

func (cmd *cmdCompare) flags(flags *pflag.FlagSet) {
	flags.BoolVarP(&cmd.files, "files", "f", false, "treat LEFT and RIGHT as paths to files holding one packet each")
}

func (cmd *cmdCompare) run(_ context.Context, e *env, argv []string) int {
	log := e.logger()
	opt := e.parseOptions()

	nodes := make([]*packet.Node, len(argv))
	for i, arg := range argv {
		var (
			n   *packet.Node
			err error
		)
		if cmd.files {
			n, err = packet.DecodeFile(arg, opt)
		} else {
			n, err = packet.Parse([]byte(arg), opt)
		}
		if err != nil {
			return e.failf("%s: %v", arg, err)
		}
		log.Debug("parsed packet", "arg", i, "depth", n.Depth(), "len", n.Len())
		nodes[i] = n
	}

	fmt.Fprintln(e.stdout, packet.Compare(nodes[0], nodes[1]))
	return 0
}
