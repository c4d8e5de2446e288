package packet

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// Strict rejects characters that are not brackets, digits, signs, commas, or whitespace.
	// By default such characters are dropped silently.
	Strict bool
	// MaxDepth limits list nesting depth. Zero means unlimited.
	MaxDepth int
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Separator is written between list items (default is ",").
	Separator string
	// Indent enables multi-line output with one child per line when non-empty.
	Indent string
	// Color enables ANSI colors using Palette.
	Color bool
	// Palette overrides the default colors. Ignored unless Color is set.
	Palette *Palette
}

// LintOptions controls lint checks.
type LintOptions struct {
	// DisableStrayCheck disables reporting of ignored characters.
	DisableStrayCheck bool
	// DisableSeparatorCheck disables missing and extra comma checks.
	DisableSeparatorCheck bool
	// MaxDepth is passed to the parser. Zero means unlimited.
	MaxDepth int
	// Strict reports stray characters as errors, since a strict parser rejects them.
	Strict bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	out := *o
	if out.MaxDepth < 0 {
		out.MaxDepth = 0
	}

	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Separator: ","}
	}

	out := *o
	if out.Separator == "" {
		out.Separator = ","
	}
	if out.Color && out.Palette == nil {
		out.Palette = DefaultPalette()
	}

	return out
}

// normalize normalizes the LintOptions.
func (o *LintOptions) normalize() LintOptions {
	if o == nil {
		return LintOptions{}
	}

	return *o
}
