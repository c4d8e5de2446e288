package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// readInput reads the named file, or stdin when no name or "-" is given.
func readInput(e *env, argv []string) ([]byte, string, error) {
	if len(argv) == 0 || argv[0] == "-" {
		b, err := io.ReadAll(e.stdin)
		return b, "<stdin>", err
	}

	b, err := os.ReadFile(argv[0])
	return b, argv[0], err
}

// useColor resolves a --color flag value against the output stream.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (choose auto, always or never)", mode)
	}
}
