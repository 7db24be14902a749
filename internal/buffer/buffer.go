// internal/buffer/buffer.go
package buffer

import (
	"errors"

	"github.com/bethropolis/postfmt/internal/types"
)

// ErrNoPath is returned by Save when neither the buffer nor the caller names a file.
var ErrNoPath = errors.New("no file path specified for saving")

// Buffer defines the interface for text buffer operations.
type Buffer interface {
	Load(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	LineLength(index int) int
	Insert(pos types.Position, text []byte) error
	Delete(start, end types.Position) error
	Replace(span types.Span, text []byte) (types.Position, error)
	TextRange(span types.Span) string
	SetText(text string)
	Save(filePath string) error
	Bytes() []byte
	String() string
	End() types.Position
	FilePath() string
	IsModified() bool
}
