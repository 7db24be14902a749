package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionBefore(t *testing.T) {
	require.True(t, Position{0, 5}.Before(Position{1, 0}))
	require.True(t, Position{2, 1}.Before(Position{2, 3}))
	require.False(t, Position{2, 3}.Before(Position{2, 3}))
	require.False(t, Position{3, 0}.Before(Position{2, 9}))
}

func TestSpanNormalized(t *testing.T) {
	s := Span{Start: Position{3, 1}, End: Position{1, 4}}
	n := s.Normalized()
	require.Equal(t, Position{1, 4}, n.Start)
	require.Equal(t, Position{3, 1}, n.End)
	require.Equal(t, n, n.Normalized())
}

func TestSpanLines(t *testing.T) {
	s := Span{Start: Position{2, 3}, End: Position{0, 2}}
	require.Equal(t, Span{Start: Position{0, 0}, End: Position{2, 7}}, s.Lines(7))
	require.True(t, Span{}.IsEmpty())
}

func TestSpanContains(t *testing.T) {
	s := Span{Start: Position{1, 2}, End: Position{2, 1}}
	require.True(t, s.Contains(Position{1, 2}))
	require.True(t, s.Contains(Position{1, 40}))
	require.True(t, s.Contains(Position{2, 0}))
	require.False(t, s.Contains(Position{2, 1}))
	require.False(t, s.Contains(Position{1, 1}))
	require.False(t, Span{}.Contains(Position{}))
}
