/*
Package packet parses nested integer lists such as [[1],[2,3,4]] into trees
and defines a total order over them.

A Node is either an integer leaf or an ordered list of nodes. Lists compare
element by element; a shorter list that is a prefix of a longer one sorts
first; an integer compared against a list behaves like a one-element list.

Parse example:

	n, err := packet.ParseString("[[1],[2,3,4]]")
	if err != nil {
		// errors.Is(err, packet.ErrInvalidFormat)
	}

Compare example:

	a := packet.MustParse("[9]")
	b := packet.MustParse("[[8,7,6]]")
	_ = packet.Compare(a, b) // packet.Greater

Construction example:

	n := packet.List(packet.Int(1), packet.Ints(2, 3))
	_ = n.String() // [1,[2,3]]

Writer example:

	out, err := packet.Format(n, &packet.FormatOptions{Indent: "  ", Color: true})
	if err != nil {
		// handle error
	}

Lint example:

	issues := packet.Lint([]byte("[1 2,,x]"), nil)
	for _, it := range issues {
		fmt.Println(it)
	}

The parser is lenient: characters other than brackets, digits, minus signs,
commas and whitespace are dropped, and commas are optional. Use
ParseOptions.Strict to reject such input, or Lint to report it.
*/
package packet
