// Package glyph holds the symbols used by the printers and the TUI.
package glyph

// Glyph is a terminal symbol with the thing it stands for.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

type Kind int

const (
	Activity Kind = iota
	Selected
	Swatch
	Clock
	Added
	Removed
	Empty
	Busy
)

// DefaultGlyphs is indexed by Kind.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "activity", Symbol: "●", Meaning: "activity"},
		{Key: "selected", Symbol: "›", Meaning: "selected activity"},
		{Key: "swatch", Symbol: "■", Meaning: "category color"},
		{Key: "clock", Symbol: "◷", Meaning: "time of day"},
		{Key: "added", Symbol: "✔", Meaning: "change saved"},
		{Key: "removed", Symbol: "✘", Meaning: "activity removed"},
		{Key: "empty", Symbol: "○", Meaning: "nothing scheduled"},
		{Key: "busy", Symbol: "•", Meaning: "day has activities"},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

func (k Kind) Glyph() Glyph {
	all := DefaultGlyphs()
	if int(k) < 0 || int(k) >= len(all) {
		return Glyph{}
	}
	return all[k]
}

func (k Kind) String() string {
	return k.Glyph().String()
}
