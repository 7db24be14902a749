package types

// HighlightType distinguishes why a region is drawn differently.
type HighlightType int

const (
	HighlightSearch HighlightType = iota // A find match
)

// HighlightRegion is a range of text to emphasise, such as a find match.
type HighlightRegion struct {
	Start Position
	End   Position // Exclusive
	Type  HighlightType
}

// StyledRange marks columns [StartCol, EndCol) of one line with a theme
// style name such as "Hashtag" or "URL".
type StyledRange struct {
	StartCol  int
	EndCol    int
	StyleName string
}
