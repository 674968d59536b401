//go:generate go run ../../cmd/genbadges --out ../../icons/badges

package taskbar

import "strconv"

// State is the badge shown on the taskbar button
type State int

const (
	// NoBadge means the overlay is cleared
	NoBadge State = iota
	// Numeric shows a single digit 1..9
	Numeric
	// Overflow shows the "9+" glyph for counts above MaxDigit
	Overflow
)

// MaxDigit is the largest count rendered as its own digit
const MaxDigit = 9

// OverflowGlyph names the glyph used for counts above MaxDigit
const OverflowGlyph = "9+"

// GlyphExt is the file extension of every badge glyph
const GlyphExt = ".ico"

func (s State) String() string {
	switch s {
	case NoBadge:
		return "none"
	case Numeric:
		return "numeric"
	case Overflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Selection is the glyph chosen for a count
type Selection struct {
	State State
	// Digit is the count clamped to 1..MaxDigit, zero for NoBadge
	Digit int
	// Name is the glyph name without extension ("1".."9" or "9+"), empty for NoBadge
	Name string
}

// File returns the glyph file name, or "" when nothing should be shown
func (s Selection) File() string {
	if s.State == NoBadge {
		return ""
	}
	return s.Name + GlyphExt
}

// SelectGlyph maps an unread count to its glyph.
// Zero and negative counts clear the badge.
func SelectGlyph(count int) Selection {
	if count <= 0 {
		return Selection{State: NoBadge}
	}
	if count > MaxDigit {
		return Selection{State: Overflow, Digit: MaxDigit, Name: OverflowGlyph}
	}
	return Selection{State: Numeric, Digit: count, Name: strconv.Itoa(count)}
}
