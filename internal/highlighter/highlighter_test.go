package highlighter

import (
	"testing"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/stretchr/testify/require"
)

func TestHighlightLine(t *testing.T) {
	h := NewHighlighter()
	got := h.HighlightLine([]byte("Thanks @ana! Read https://x.dev/a#b #golang"))
	require.Equal(t, []types.StyledRange{
		{StartCol: 7, EndCol: 11, StyleName: StyleMention},
		{StartCol: 18, EndCol: 35, StyleName: StyleURL},
		{StartCol: 36, EndCol: 43, StyleName: StyleHashtag},
	}, got)
}

func TestHighlightStyledGlyphsUseRuneColumns(t *testing.T) {
	h := NewHighlighter()
	got := h.HighlightLine([]byte("a 𝗯𝗼𝗹𝗱 #tag"))
	require.Equal(t, []types.StyledRange{
		{StartCol: 2, EndCol: 6, StyleName: StyleStyled},
		{StartCol: 7, EndCol: 11, StyleName: StyleHashtag},
	}, got)
}

func TestHighlightBuffer(t *testing.T) {
	buf := buffer.NewSliceBuffer()
	buf.SetText("plain\n#one\n\nhi @two")
	res := NewHighlighter().HighlightBuffer(buf)
	require.Len(t, res, 2)
	require.Equal(t, StyleHashtag, res[1][0].StyleName)
	require.Equal(t, StyleMention, res[3][0].StyleName)
	require.Nil(t, res[0])
}

func TestHighlightTextMatchesBuffer(t *testing.T) {
	text := "see https://x.io/#frag\n#go @me"
	buf := buffer.NewSliceBuffer()
	buf.SetText(text)
	h := NewHighlighter()
	require.Equal(t, h.HighlightBuffer(buf), h.HighlightText(text))
	require.Len(t, h.HighlightText(text)[0], 1)
}
