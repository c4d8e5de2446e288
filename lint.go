package packet

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// IssueLevel represents severity of a lint issue.
type IssueLevel string

const (
	// IssueError indicates the text does not parse.
	IssueError IssueLevel = "error"
	// IssueWarning indicates the text parses but is not canonical.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeInvalidFormat    = "invalid_format"
	CodeStrayCharacter   = "stray_character"
	CodeMissingSeparator = "missing_separator"
	CodeExtraSeparator   = "extra_separator"
)

// Issue represents a lint issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Line    int        `json:"line,omitempty" yaml:"line,omitempty"` // Line number, 1-based
	Col     int        `json:"col,omitempty" yaml:"col,omitempty"`   // Column number, 1-based
}

// String formats the issue as line:col: level code: message.
func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s %s: %s", i.Line, i.Col, i.Level, i.Code, i.Message)
}

// Lint checks packet text and returns issues ordered by position.
//
// The parser drops unknown characters and treats commas as optional; Lint
// reports both so that lenient input can be found and fixed.
func Lint(data []byte, opt *LintOptions) []Issue {
	lopt := opt.normalize()
	var out []Issue

	if _, err := Parse(data, &ParseOptions{MaxDepth: lopt.MaxDepth}); err != nil {
		out = append(out, issueFromError(err))
	}

	l := newLexer(bytes.NewReader(data), ParseOptions{})
	if !lopt.DisableSeparatorCheck {
		out = append(out, lintSeparators(l)...)
	} else {
		drain(l)
	}

	if !lopt.DisableStrayCheck {
		level := IssueWarning
		if lopt.Strict {
			level = IssueError
		}
		for _, s := range l.strays {
			out = append(out, Issue{
				Level:   level,
				Code:    CodeStrayCharacter,
				Message: fmt.Sprintf("ignored character %q", s.Ch),
				Line:    s.Line,
				Col:     s.Col,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b Issue) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return out
}

// lintSeparators walks all tokens and reports missing and extra commas.
func lintSeparators(l *lexer) []Issue {
	var (
		out   []Issue
		depth int
		prev  tokenType = tokEOF
	)

	warn := func(code string, tok token, format string, args ...any) {
		out = append(out, Issue{
			Level:   IssueWarning,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
			Line:    tok.Line,
			Col:     tok.Col,
		})
	}

	for {
		tok, err := l.next()
		if err != nil || tok.Type == tokEOF {
			return out
		}

		switch tok.Type {
		case tokOpen, tokNumber:
			if depth > 0 && (prev == tokNumber || prev == tokClose) {
				warn(CodeMissingSeparator, tok, "missing ',' before %q", tok.Lit)
			}
			if tok.Type == tokOpen {
				depth++
			}

		case tokClose:
			if prev == tokComma && depth > 0 {
				warn(CodeExtraSeparator, tok, "trailing ',' before ']'")
			}
			if depth > 0 {
				depth--
			}

		case tokComma:
			switch {
			case depth == 0:
				warn(CodeExtraSeparator, tok, "',' outside of a list")
			case prev == tokOpen:
				warn(CodeExtraSeparator, tok, "leading ',' after '['")
			case prev == tokComma:
				warn(CodeExtraSeparator, tok, "repeated ','")
			}
		}

		prev = tok.Type
	}
}

// drain consumes all tokens so that strays are recorded.
func drain(l *lexer) {
	for {
		tok, err := l.next()
		if err != nil || tok.Type == tokEOF {
			return
		}
	}
}

// issueFromError converts a parse error to an issue.
func issueFromError(err error) Issue {
	issue := Issue{Level: IssueError, Code: CodeInvalidFormat, Message: err.Error()}

	var se *SyntaxError
	if errors.As(err, &se) {
		issue.Message = se.Msg
		issue.Line = se.Line
		issue.Col = se.Col
	}

	return issue
}
