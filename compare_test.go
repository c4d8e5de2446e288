package packet

import (
	"math"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompareScenarios(t *testing.T) {
	tests := []struct {
		left  string
		right string
		want  Ordering
	}{
		{"[1,1,3,1,1]", "[1,1,5,1,1]", Less},
		{"[[1],[2,3,4]]", "[[1],4]", Less},
		{"[9]", "[[8,7,6]]", Greater},
		{"[[4,4],4,4]", "[[4,4],4,4,4]", Less},
		{"[7,7,7,7]", "[7,7,7]", Greater},
		{"[]", "[3]", Less},
		{"[[[]]]", "[[]]", Greater},
		{"[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", Greater},
		{"[1,1,3,1,1]", "[1,1,5]", Less},
		{"[[1],[2,3,4]]", "[[1],[2,4,4]]", Less},
		{"[[5]]", "[[8,7,6]]", Less},
		{"[]", "[]", Equal},
		{"[-1]", "[0]", Less},
		{"[[-3]]", "[-3]", Equal},
	}

	for _, tt := range tests {
		t.Run(tt.left+"_"+tt.right, func(t *testing.T) {
			a, b := MustParse(tt.left), MustParse(tt.right)
			if got := Compare(a, b); got != tt.want {
				t.Fatalf("Compare(%s, %s) = %s, want %s", tt.left, tt.right, got, tt.want)
			}
			if got := Compare(b, a); got != -tt.want {
				t.Fatalf("Compare(%s, %s) = %s, want %s", tt.right, tt.left, got, -tt.want)
			}
		})
	}
}

func TestCompareCoercion(t *testing.T) {
	values := []int32{math.MinInt32, -5, 0, 7, math.MaxInt32}
	for _, v := range values {
		if got := Compare(Int(v), Ints(v)); got != Equal {
			t.Errorf("Compare(%d, [%d]) = %s", v, v, got)
		}
		if got := Compare(Ints(v), Int(v)); got != Equal {
			t.Errorf("Compare([%d], %d) = %s", v, v, got)
		}
	}

	for _, l := range corpus(t) {
		for _, v := range values {
			want := Compare(l, Ints(v))
			if got := Compare(l, Int(v)); got != want {
				t.Errorf("Compare(%s, %d) = %s, want %s", l, v, got, want)
			}
			if got := Compare(Int(v), l); got != -want {
				t.Errorf("Compare(%d, %s) = %s, want %s", v, l, got, -want)
			}
		}
	}
}

func TestCompareEmptyList(t *testing.T) {
	empty := Ints()
	for _, n := range corpus(t) {
		if n.Len() == 0 {
			if got := Compare(empty, n); got != Equal {
				t.Errorf("Compare([], %s) = %s", n, got)
			}
			continue
		}
		if got := Compare(empty, n); got != Less {
			t.Errorf("Compare([], %s) = %s, want less", n, got)
		}
	}
}

func TestComparePrefix(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 2022))
	for range 200 {
		s := randomList(rng, 3)
		ext := s.Clone()
		for range 1 + rng.IntN(3) {
			if err := ext.Append(randomNode(rng, 2)); err != nil {
				t.Fatalf("append: %v", err)
			}
		}
		if got := Compare(s, ext); got != Less {
			t.Fatalf("Compare(%s, %s) = %s, want less", s, ext, got)
		}
	}
}

func TestCompareOrderProperties(t *testing.T) {
	nodes := corpus(t)
	for _, a := range nodes {
		if got := Compare(a, a); got != Equal {
			t.Fatalf("not reflexive: Compare(%s, %s) = %s", a, a, got)
		}
		if got := Compare(a, a.Clone()); got != Equal {
			t.Fatalf("clone compares %s to %s", got, a)
		}
		for _, b := range nodes {
			ab, ba := Compare(a, b), Compare(b, a)
			if ab != -ba {
				t.Fatalf("not antisymmetric: %s vs %s gave %s and %s", a, b, ab, ba)
			}
			if a.Equal(b) && ab != Equal {
				t.Fatalf("structurally equal nodes compare %s: %s", ab, a)
			}
			for _, c := range nodes {
				bc, ac := Compare(b, c), Compare(a, c)
				if ab != Greater && bc != Greater && ac == Greater {
					t.Fatalf("not transitive: %s <= %s <= %s but %s > %s", a, b, c, a, c)
				}
				if ab == Equal && bc == Equal && ac != Equal {
					t.Fatalf("equality not transitive: %s, %s, %s", a, b, c)
				}
			}
		}
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != Equal {
		t.Fatalf("nil must equal nil")
	}
	if Compare(nil, Ints()) != Less || Compare(Ints(), nil) != Greater {
		t.Fatalf("nil must sort first")
	}
}

func TestSortSample(t *testing.T) {
	nodes, err := DecodeAllFile(filepath.Join("testdata", "pairs.txt"), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	dividers := []*Node{MustParse("[[2]]"), MustParse("[[6]]")}
	nodes = append(nodes, dividers...)

	Sort(nodes)
	if !IsSorted(nodes) {
		t.Fatalf("IsSorted reported false after Sort")
	}

	want, err := DecodeAllFile(filepath.Join("testdata", "sorted.txt"), nil)
	if err != nil {
		t.Fatalf("decode sorted: %v", err)
	}
	if diff := cmp.Diff(render(want), render(nodes)); diff != "" {
		t.Fatalf("sorted order mismatch (-want +got):\n%s", diff)
	}

	key := 1
	for i, n := range nodes {
		for _, d := range dividers {
			if n == d {
				key *= i + 1
			}
		}
	}
	if key != 140 {
		t.Fatalf("divider positions product = %d, want 140", key)
	}
}

func TestOrderedPairsSample(t *testing.T) {
	nodes, err := DecodeAllFile(filepath.Join("testdata", "pairs.txt"), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(nodes)%2 != 0 {
		t.Fatalf("odd packet count %d", len(nodes))
	}

	var ordered []int
	for i := 0; i < len(nodes); i += 2 {
		if Before(nodes[i], nodes[i+1]) {
			ordered = append(ordered, i/2+1)
		}
	}
	if diff := cmp.Diff([]int{1, 2, 4, 6}, ordered); diff != "" {
		t.Fatalf("ordered pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestBefore(t *testing.T) {
	a, b := MustParse("[[1],[2,3,4]]"), MustParse("[[1],4]")
	if !Before(a, b) || Before(b, a) {
		t.Fatalf("Before disagrees with Compare for %s and %s", a, b)
	}
	if Before(a, a.Clone()) {
		t.Fatalf("Before must be false for equal packets")
	}
}

func TestSortStableKeepsEqualOrder(t *testing.T) {
	a, b := MustParse("[5]"), MustParse("[[5]]")
	nodes := []*Node{MustParse("[6]"), a, b, MustParse("[4]")}
	SortStable(nodes)
	if nodes[1] != a || nodes[2] != b {
		t.Fatalf("stable sort reordered equal nodes: %v", render(nodes))
	}
}

func TestOrderingString(t *testing.T) {
	got := []string{Less.String(), Equal.String(), Greater.String()}
	if diff := cmp.Diff([]string{"less", "equal", "greater"}, got); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}
}

// corpus returns trees of varying shape and depth, including pairs that
// only compare equal through integer promotion.
func corpus(t *testing.T) []*Node {
	t.Helper()
	texts := []string{
		"[]", "[[]]", "[[[]]]", "[[],[]]",
		"[0]", "[1]", "[-1]", "[[1]]", "[[[1]]]", "[1,1]", "[[1],1]", "[1,[1]]",
		"[1,1,3,1,1]", "[1,1,5,1,1]", "[[1],[2,3,4]]", "[[1],4]",
		"[9]", "[[8,7,6]]", "[[4,4],4,4]", "[[4,4],4,4,4]",
		"[7,7,7,7]", "[7,7,7]", "[3]", "[[2]]", "[[6]]",
		"[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]",
		"[[],1]", "[[[]],[]]", "[2147483647]", "[-2147483648]",
	}

	out := make([]*Node, 0, len(texts)+20)
	for _, s := range texts {
		n, err := ParseString(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		out = append(out, n)
	}

	rng := rand.New(rand.NewPCG(7, 11))
	for range 20 {
		out = append(out, randomList(rng, 3))
	}

	return out
}

// randomList returns a random list of at most depth levels.
func randomList(rng *rand.Rand, depth int) *Node {
	n := Ints()
	for range rng.IntN(4) {
		_ = n.Append(randomNode(rng, depth-1))
	}

	return n
}

// randomNode returns a random integer or list. Values stay small so that
// equal prefixes are common.
func randomNode(rng *rand.Rand, depth int) *Node {
	if depth <= 0 || rng.IntN(3) > 0 {
		return Int(int32(rng.IntN(5) - 1))
	}

	return randomList(rng, depth)
}

// render returns the canonical text of each node.
func render(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}

	return out
}
