package packet

import "github.com/fatih/color"

// Palette holds the colors used by colored formatting.
type Palette struct {
	Brackets  []*color.Color // Bracket colors, cycled by nesting depth
	Number    *color.Color   // Integer color
	Separator *color.Color   // Separator color
}

// DefaultPalette returns the default palette with colors forced on,
// regardless of whether stdout is a terminal.
func DefaultPalette() *Palette {
	p := &Palette{
		Brackets: []*color.Color{
			color.New(color.FgYellow),
			color.New(color.FgMagenta),
			color.New(color.FgCyan),
		},
		Number:    color.RGB(128, 216, 236),
		Separator: color.RGB(196, 128, 128),
	}
	for _, c := range p.Brackets {
		c.EnableColor()
	}
	p.Number.EnableColor()
	p.Separator.EnableColor()

	return p
}

// bracket returns the bracket color for a nesting depth.
func (p *Palette) bracket(depth int) *color.Color {
	if len(p.Brackets) == 0 {
		return nil
	}

	return p.Brackets[depth%len(p.Brackets)]
}

// paint wraps s in the escape codes of c. A nil color leaves s unchanged.
func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}

	return c.Sprint(s)
}
