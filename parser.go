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

// Parse parses a packet from bytes.
func Parse(data []byte, opt *ParseOptions) (*Node, error) {
	return Decode(bytes.NewReader(data), opt)
}

// ParseString parses a packet from a string with default options.
func ParseString(s string) (*Node, error) {
	return Decode(strings.NewReader(s), nil)
}

// MustParse is like ParseString but panics on error.
func MustParse(s string) *Node {
	n, err := ParseString(s)
	if err != nil {
		panic(err)
	}

	return n
}

// Decode parses a packet from reader.
func Decode(r io.Reader, opt *ParseOptions) (*Node, error) {
	p := newParser(r, opt.normalize(), 1)
	return p.parsePacket()
}

// DecodeFile parses a packet from a file.
func DecodeFile(path string, opt *ParseOptions) (*Node, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(b, opt)
}

// DecodeAll parses one packet per line, skipping blank lines.
// Error positions refer to lines of the whole input.
func DecodeAll(r io.Reader, opt *ParseOptions) ([]*Node, error) {
	popt := opt.normalize()
	br := bufio.NewReader(r)

	var out []*Node
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		if strings.TrimSpace(line) != "" {
			p := newParser(strings.NewReader(line), popt, lineNo)
			n, perr := p.parsePacket()
			if perr != nil {
				return nil, perr
			}
			out = append(out, n)
		}

		if err != nil {
			break
		}
	}

	return out, nil
}

// DecodeAllFile parses one packet per line from a file.
func DecodeAllFile(path string, opt *ParseOptions) ([]*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeAll(f, opt)
}

// parser builds a node tree from tokens in a single pass.
type parser struct {
	l   *lexer       // Lexer for the packet text
	opt ParseOptions // Options for the parser
}

// newParser creates a new parser whose positions start at line.
func newParser(r io.Reader, opt ParseOptions, line int) *parser {
	l := newLexer(r, opt)
	// The first character was already read on line 1.
	l.pos.line += line - 1
	return &parser{l: l, opt: opt}
}

// parsePacket parses exactly one packet.
//
// Each open list is a buffer on the stack. Closing a list wraps its buffer
// into a finished node and appends it to the enclosing buffer, so no node is
// visible to the caller until all of its children are known.
func (p *parser) parsePacket() (*Node, error) {
	tok, err := p.l.next()
	if err != nil {
		return nil, err
	}
	if tok.Type == tokEOF {
		return nil, p.errorf(tok, "empty input")
	}
	if len(p.l.strays) > 0 {
		s := p.l.strays[0]
		return nil, syntaxErrorf(s.Line, s.Col, "expected '[', found %q", s.Ch)
	}
	if tok.Type != tokOpen {
		return nil, p.errorf(tok, "expected '[', found %q", tok.Lit)
	}

	var (
		stack [][]*Node // Children of each open list
		opens []token   // Opening bracket of each open list
		root  *Node
	)

	for {
		switch tok.Type {
		case tokOpen:
			if root != nil {
				return nil, p.errorf(tok, "unexpected '[' after end of packet")
			}
			if p.opt.MaxDepth > 0 && len(stack) >= p.opt.MaxDepth {
				return nil, p.errorf(tok, "nesting exceeds max depth %d", p.opt.MaxDepth)
			}
			stack = append(stack, nil)
			opens = append(opens, tok)

		case tokNumber:
			if len(stack) == 0 {
				return nil, p.errorf(tok, "integer %s outside of a list", tok.Lit)
			}
			v, err := strconv.ParseInt(tok.Lit, 10, 32)
			if err != nil {
				return nil, p.errorf(tok, "integer %s out of range", tok.Lit)
			}
			top := len(stack) - 1
			stack[top] = append(stack[top], &Node{kind: KindInteger, value: int32(v), attached: true})

		case tokClose:
			if len(stack) == 0 {
				return nil, p.errorf(tok, "unmatched ']'")
			}
			top := len(stack) - 1
			list := &Node{kind: KindList, children: stack[top]}
			if list.children == nil {
				list.children = []*Node{}
			}
			stack = stack[:top]
			opens = opens[:top]
			if top == 0 {
				root = list
			} else {
				list.attached = true
				stack[top-1] = append(stack[top-1], list)
			}

		case tokComma:
			// Separators are optional between items.

		case tokEOF:
			if len(stack) > 0 {
				return nil, p.errorf(opens[len(opens)-1], "unmatched '['")
			}
			return root, nil
		}

		tok, err = p.l.next()
		if err != nil {
			return nil, err
		}
	}
}

// errorf formats an error at the token position.
func (p *parser) errorf(tok token, format string, args ...any) error {
	return syntaxErrorf(tok.Line, tok.Col, format, args...)
}
