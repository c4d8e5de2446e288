package packet

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// errNilNode is returned when encoding a nil tree.
var errNilNode = errors.New("nil node")

// Encode writes a packet to writer.
func Encode(w io.Writer, n *Node, opt *FormatOptions) error {
	if n == nil {
		return errNilNode
	}

	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, opt: fopt}
	if err := wr.writeNode(n, 0); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a packet to a file, followed by a newline.
func EncodeFile(path string, n *Node, opt *FormatOptions) error {
	b, err := Format(n, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(b, '\n'), 0o600)
}

// Format renders a packet to bytes.
func Format(n *Node, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, n, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// String returns the canonical text of the node, e.g. [1,[2,3]].
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	var b strings.Builder
	w := &writer{w: &b, opt: FormatOptions{Separator: ","}}
	if err := w.writeNode(n, 0); err != nil {
		return "<" + err.Error() + ">"
	}

	return b.String()
}

// writer writes a node tree to a writer.
type writer struct {
	w     io.Writer     // Writer to write to
	cache []string      // Cache of indentation strings
	opt   FormatOptions // Normalized format options
}

// writeNode writes a node at the given nesting depth.
func (w *writer) writeNode(n *Node, depth int) error {
	if n.kind == KindInteger {
		return w.writeNumber(n.value)
	}

	if err := w.writeBracket("[", depth); err != nil {
		return err
	}

	multiline := w.opt.Indent != "" && len(n.children) > 0
	for i, c := range n.children {
		if i > 0 {
			if err := w.writeSeparator(); err != nil {
				return err
			}
		}
		if multiline {
			if err := w.writeNewline(depth + 1); err != nil {
				return err
			}
		}
		if err := w.writeNode(c, depth+1); err != nil {
			return err
		}
	}

	if multiline {
		if err := w.writeNewline(depth); err != nil {
			return err
		}
	}

	return w.writeBracket("]", depth)
}

// writeNumber writes an integer.
func (w *writer) writeNumber(v int32) error {
	s := strconv.FormatInt(int64(v), 10)
	if w.opt.Color {
		s = paint(w.opt.Palette.Number, s)
	}

	return w.writeString(s)
}

// writeBracket writes a bracket colored by depth.
func (w *writer) writeBracket(s string, depth int) error {
	if w.opt.Color {
		s = paint(w.opt.Palette.bracket(depth), s)
	}

	return w.writeString(s)
}

// writeSeparator writes the item separator.
func (w *writer) writeSeparator() error {
	s := w.opt.Separator
	if w.opt.Indent != "" {
		// Trailing spaces are dropped in multi-line output.
		s = strings.TrimRight(s, " ")
	}
	if w.opt.Color {
		s = paint(w.opt.Palette.Separator, s)
	}

	return w.writeString(s)
}

// writeNewline writes a newline and indentation for level.
func (w *writer) writeNewline(level int) error {
	if err := w.writeString("\n"); err != nil {
		return err
	}

	return w.writeString(w.indentFor(level))
}

// indentFor returns the indentation string for level.
func (w *writer) indentFor(level int) string {
	for len(w.cache) <= level {
		w.cache = append(w.cache, strings.Repeat(w.opt.Indent, len(w.cache)))
	}

	return w.cache[level]
}

// writeString writes a string.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
