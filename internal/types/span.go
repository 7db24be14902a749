package types

// Span is a half-open range of buffer text, Start inclusive and End
// exclusive. It is what the editing surface hands to the formatters in
// place of a live selection.
type Span struct {
	Start Position
	End   Position
}

// Normalized returns the span with Start before or equal to End.
func (s Span) Normalized() Span {
	if s.End.Before(s.Start) {
		return Span{Start: s.End, End: s.Start}
	}
	return s
}

// IsEmpty reports whether the span covers no text.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Lines widens the span to cover whole lines, from column 0 of its first
// line to endCol, the rune length of its last line.
func (s Span) Lines(endCol int) Span {
	n := s.Normalized()
	return Span{
		Start: Position{Line: n.Start.Line, Col: 0},
		End:   Position{Line: n.End.Line, Col: endCol},
	}
}

// Contains reports whether pos lies inside the span, End exclusive.
func (s Span) Contains(pos Position) bool {
	n := s.Normalized()
	return !pos.Before(n.Start) && pos.Before(n.End)
}
