package packet

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF    tokenType = iota // End of input
	tokOpen                    // Left bracket
	tokClose                   // Right bracket
	tokNumber                  // Signed integer literal
	tokComma                   // Item separator
)

// token represents a token in packet text.
type token struct {
	Lit  string    // Literal value of the token
	Type tokenType // Type of the token
	Line int       // Line number of the token
	Col  int       // Column number of the token
}

// stray is a character the lexer skipped.
type stray struct {
	Ch   rune // Skipped character
	Line int  // Line number
	Col  int  // Column number
}

// lexer splits packet text into tokens.
type lexer struct {
	r      *bufio.Reader // Reader for the input
	err    error         // First read error other than io.EOF
	strays []stray       // Skipped characters, in input order
	pos    position      // Position of the current character
	ch     rune          // Current character
	opt    ParseOptions  // Options for the lexer
	eof    bool          // End of input
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// newLexer creates a new lexer.
func newLexer(r io.Reader, opt ParseOptions) *lexer {
	l := &lexer{r: bufio.NewReader(r), opt: opt, pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}

	return l
}

// next returns the next token.
func (l *lexer) next() (token, error) {
	for {
		l.skipWhitespace()
		if l.eof {
			if l.err != nil {
				return token{}, l.err
			}
			return token{Type: tokEOF, Line: l.pos.line, Col: l.pos.col}, nil
		}

		startLine, startCol := l.pos.line, l.pos.col

		switch l.ch {
		case '[':
			l.read()
			return token{Type: tokOpen, Lit: "[", Line: startLine, Col: startCol}, nil
		case ']':
			l.read()
			return token{Type: tokClose, Lit: "]", Line: startLine, Col: startCol}, nil
		case ',':
			l.read()
			return token{Type: tokComma, Lit: ",", Line: startLine, Col: startCol}, nil
		}

		if isDigit(l.ch) || (l.ch == '-' && isDigit(l.peek())) {
			return token{Type: tokNumber, Lit: l.readNumber(), Line: startLine, Col: startCol}, nil
		}

		if l.opt.Strict {
			return token{}, l.errorf("unexpected character %q", l.ch)
		}

		// Anything else is dropped; the linter reports it.
		l.strays = append(l.strays, stray{Ch: l.ch, Line: startLine, Col: startCol})
		l.read()
	}
}

// read reads the next character.
func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		l.eof = true
		l.ch = 0
		return
	}

	if ch == '\n' {
		l.pos.line++
		l.pos.col = 0
	} else {
		l.pos.col++
	}

	l.ch = ch
}

// peek returns the next character without consuming it.
func (l *lexer) peek() rune {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0
	}

	_ = l.r.UnreadRune()
	return ch
}

// skipWhitespace skips whitespace characters.
func (l *lexer) skipWhitespace() {
	for !l.eof && unicode.IsSpace(l.ch) {
		l.read()
	}
}

// readNumber reads an optional minus sign followed by a run of digits.
func (l *lexer) readNumber() string {
	var b strings.Builder
	if l.ch == '-' {
		b.WriteRune(l.ch)
		l.read()
	}
	for !l.eof && isDigit(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}

	return b.String()
}

// errorf formats an error at the current position.
func (l *lexer) errorf(format string, args ...any) error {
	return syntaxErrorf(l.pos.line, l.pos.col, format, args...)
}

// isDigit checks if a character is an ASCII digit.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
