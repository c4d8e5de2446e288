package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/woozymasta/packet"
)

type cmdFormat struct {
	output string
	indent string
	color  string
}

func (*cmdFormat) help() *commandHelp {
	return &commandHelp{
		usage:   "fmt [FILE]",
		summary: "Print packets (one per line) in canonical form",
		args:    cobra.MaximumNArgs(1),
	}
}

func (cmd *cmdFormat) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.output, "output", "o", "text", "output format: text, json or yaml")
	flags.StringVar(&cmd.indent, "indent", "", "indentation for multi-line output")
	flags.StringVar(&cmd.color, "color", "auto", "colorize text output: auto, always or never")
}

func (cmd *cmdFormat) run(_ context.Context, e *env, argv []string) int {
	log := e.logger()

	data, name, err := readInput(e, argv)
	if err != nil {
		return e.failf("%v", err)
	}
	nodes, err := packet.DecodeAll(bytes.NewReader(data), e.parseOptions())
	if err != nil {
		return e.failf("%s: %v", name, err)
	}
	log.Debug("decoded packets", "input", name, "count", len(nodes))

	var out []byte
	switch cmd.output {
	case "text", "":
		colored, err := useColor(cmd.color, e.stdout)
		if err != nil {
			return e.failf("%v", err)
		}
		out, err = formatText(nodes, &packet.FormatOptions{Indent: cmd.indent, Color: colored})
		if err != nil {
			return e.failf("%v", err)
		}
	case "json":
		if cmd.indent != "" {
			out, err = json.MarshalIndent(nodes, "", cmd.indent)
		} else {
			out, err = json.Marshal(nodes)
		}
		if err != nil {
			return e.failf("%v", err)
		}
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(nodes)
		if err != nil {
			return e.failf("%v", err)
		}
	default:
		return e.failf("unsupported output format %q (choose text, json or yaml)", cmd.output)
	}

	if _, err := e.stdout.Write(out); err != nil {
		return e.failf("%v", err)
	}
	return 0
}

// formatText renders packets one per line.
func formatText(nodes []*packet.Node, opt *packet.FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := packet.Encode(&buf, n, opt); err != nil {
			return nil, fmt.Errorf("format %s: %w", n, err)
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}
