package packet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLintTable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opt  *LintOptions
		want []Issue
	}{
		{name: "clean", in: "[1,[2,3],[]]"},
		{name: "clean_spaces", in: "[ 1, [2, 3] ]\n"},
		{
			name: "missing_separator",
			in:   "[1 2]",
			want: []Issue{{Level: IssueWarning, Code: CodeMissingSeparator, Line: 1, Col: 4}},
		},
		{
			name: "missing_separator_between_lists",
			in:   "[[1][2]]",
			want: []Issue{{Level: IssueWarning, Code: CodeMissingSeparator, Line: 1, Col: 5}},
		},
		{
			name: "leading_separator",
			in:   "[,1]",
			want: []Issue{{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 2}},
		},
		{
			name: "trailing_separator",
			in:   "[1,]",
			want: []Issue{{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 4}},
		},
		{
			name: "repeated_separator",
			in:   "[1,,2]",
			want: []Issue{{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 4}},
		},
		{
			name: "separator_after_packet",
			in:   "[1],",
			want: []Issue{{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 4}},
		},
		{
			name: "stray",
			in:   "[1,a]",
			want: []Issue{
				{Level: IssueWarning, Code: CodeStrayCharacter, Line: 1, Col: 4},
				{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 5},
			},
		},
		{
			name: "unmatched_open",
			in:   "[1,2",
			want: []Issue{{Level: IssueError, Code: CodeInvalidFormat, Line: 1, Col: 1}},
		},
		{
			name: "ordered_by_position",
			in:   "[1 x,]",
			want: []Issue{
				{Level: IssueWarning, Code: CodeStrayCharacter, Line: 1, Col: 4},
				{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 6},
			},
		},
		{
			name: "stray_strict",
			in:   "[1,a]",
			opt:  &LintOptions{Strict: true},
			want: []Issue{
				{Level: IssueError, Code: CodeStrayCharacter, Line: 1, Col: 4},
				{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 5},
			},
		},
		{
			name: "stray_check_disabled",
			in:   "[1,a]",
			opt:  &LintOptions{DisableStrayCheck: true},
			want: []Issue{{Level: IssueWarning, Code: CodeExtraSeparator, Line: 1, Col: 5}},
		},
		{
			name: "separator_check_disabled",
			in:   "[1 2,,a]",
			opt:  &LintOptions{DisableSeparatorCheck: true},
			want: []Issue{{Level: IssueWarning, Code: CodeStrayCharacter, Line: 1, Col: 7}},
		},
		{
			name: "depth_limit",
			in:   "[[[1]]]",
			opt:  &LintOptions{MaxDepth: 2},
			want: []Issue{{Level: IssueError, Code: CodeInvalidFormat, Line: 1, Col: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lint([]byte(tt.in), tt.opt)
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Issue{}, "Message"), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLintSample(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "lenient.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	counts := map[string]int{}
	for _, it := range Lint(data, nil) {
		counts[it.Code]++
	}
	want := map[string]int{
		CodeMissingSeparator: 2,
		CodeStrayCharacter:   2,
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Fatalf("issue counts mismatch (-want +got):\n%s", diff)
	}
}

func TestIssueString(t *testing.T) {
	it := Issue{Level: IssueWarning, Code: CodeStrayCharacter, Message: "ignored character 'a'", Line: 2, Col: 5}
	if got := it.String(); got != "2:5: warning stray_character: ignored character 'a'" {
		t.Fatalf("unexpected issue text %q", got)
	}
}
