// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/bethropolis/postfmt/internal/utils"
)

// SliceBuffer stores the post as one byte slice per line. It is safe for
// one writer plus concurrent readers such as the autosave plugin.
type SliceBuffer struct {
	mu       sync.RWMutex
	lines    [][]byte
	filePath string
	modified bool // Track if buffer has unsaved changes
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{[]byte("")},
	}
}

// Load reads a file into the buffer. Replaces existing content. A missing
// file gives an empty buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.modified = false

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = [][]byte{[]byte("")}
			sb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}

	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\n"))
	sb.lines = splitLines(data)
	sb.filePath = filePath
	logger.DebugTagf("buffer", "Loaded %s (%d lines)", filePath, len(sb.lines))
	return nil
}

func splitLines(data []byte) [][]byte {
	parts := bytes.Split(data, []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = append([]byte(nil), p...)
	}
	return lines
}

// SetText replaces the whole content, keeping the file path.
func (sb *SliceBuffer) SetText(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.lines = splitLines([]byte(text))
	sb.modified = true
}

func (sb *SliceBuffer) Lines() [][]byte {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// LineLength returns the rune length of a line, or 0 when out of range.
func (sb *SliceBuffer) LineLength(index int) int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.lineLength(index)
}

func (sb *SliceBuffer) lineLength(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utf8.RuneCount(sb.lines[index])
}

// End returns the position just past the last rune.
func (sb *SliceBuffer) End() types.Position {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	last := len(sb.lines) - 1
	return types.Position{Line: last, Col: sb.lineLength(last)}
}

func (sb *SliceBuffer) Bytes() []byte {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.bytes()
}

func (sb *SliceBuffer) bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

func (sb *SliceBuffer) String() string {
	return string(sb.Bytes())
}

// Save writes the buffer content to filePath, or to the stored path when empty.
func (sb *SliceBuffer) Save(filePath string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return ErrNoPath
	}

	content := append(sb.bytes(), '\n')
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// IsModified returns true if the buffer has unsaved changes.
func (sb *SliceBuffer) IsModified() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.modified
}

func (sb *SliceBuffer) FilePath() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.filePath
}

// --- Buffer Modification Methods ---

// validatePosition clamps pos into the buffer and returns its byte offset in the line.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, int) {
	if len(sb.lines) == 0 {
		sb.lines = [][]byte{[]byte("")}
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}

	line := sb.lines[pos.Line]
	byteOff := utils.RuneIndexToByteOffset(line, pos.Col)
	if byteOff < 0 { // past the end of the line
		byteOff = len(line)
	}
	return types.Position{Line: pos.Line, Col: utf8.RuneCount(line[:byteOff])}, byteOff
}

// validateRange orders and clamps a range, returning byte offsets for both ends.
func (sb *SliceBuffer) validateRange(start, end types.Position) (vStart, vEnd types.Position, startOffset, endOffset int) {
	if end.Before(start) {
		start, end = end, start
	}
	vStart, startOffset = sb.validatePosition(start)
	vEnd, endOffset = sb.validatePosition(end)
	return vStart, vEnd, startOffset, endOffset
}

// Insert inserts text at a given position. Handles single/multiple lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) error {
	if len(text) == 0 {
		return nil
	}
	sb.mu.Lock()
	defer sb.mu.Unlock()
	_, err := sb.insert(pos, text)
	return err
}

// insert returns the position just past the inserted text.
func (sb *SliceBuffer) insert(pos types.Position, text []byte) (types.Position, error) {
	validPos, byteOffset := sb.validatePosition(pos)
	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	insertLines := bytes.Split(text, []byte("\n"))

	tail := append([]byte(nil), currentLine[byteOffset:]...)
	head := append([]byte(nil), currentLine[:byteOffset]...)

	if len(insertLines) == 1 {
		sb.lines[validPos.Line] = append(append(head, insertLines[0]...), tail...)
		return types.Position{Line: validPos.Line, Col: validPos.Col + utf8.RuneCount(insertLines[0])}, nil
	}

	newLines := make([][]byte, len(insertLines))
	newLines[0] = append(head, insertLines[0]...)
	for i := 1; i < len(insertLines); i++ {
		newLines[i] = append([]byte(nil), insertLines[i]...)
	}
	last := len(newLines) - 1
	endCol := utf8.RuneCount(newLines[last])
	newLines[last] = append(newLines[last], tail...)

	rest := append([][]byte(nil), sb.lines[validPos.Line+1:]...)
	sb.lines = append(append(sb.lines[:validPos.Line], newLines...), rest...)
	return types.Position{Line: validPos.Line + last, Col: endCol}, nil
}

// Delete removes text within a given range (start inclusive, end exclusive).
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.delete(start, end)
	return nil
}

func (sb *SliceBuffer) delete(start, end types.Position) {
	vStart, vEnd, startOffset, endOffset := sb.validateRange(start, end)
	if vStart == vEnd {
		return
	}
	sb.modified = true

	startPart := sb.lines[vStart.Line][:startOffset]
	endPart := sb.lines[vEnd.Line][endOffset:]
	merged := append(append([]byte(nil), startPart...), endPart...)

	rest := append([][]byte(nil), sb.lines[vEnd.Line+1:]...)
	sb.lines = append(append(sb.lines[:vStart.Line], merged), rest...)
}

// TextRange returns the text covered by span.
func (sb *SliceBuffer) TextRange(span types.Span) string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	vStart, vEnd, startOffset, endOffset := sb.validateRange(span.Start, span.End)
	if vStart == vEnd {
		return ""
	}
	if vStart.Line == vEnd.Line {
		return string(sb.lines[vStart.Line][startOffset:endOffset])
	}

	var b bytes.Buffer
	b.Write(sb.lines[vStart.Line][startOffset:])
	for i := vStart.Line + 1; i < vEnd.Line; i++ {
		b.WriteByte('\n')
		b.Write(sb.lines[i])
	}
	b.WriteByte('\n')
	b.Write(sb.lines[vEnd.Line][:endOffset])
	return b.String()
}

// Replace swaps the text covered by span for text and returns the
// position just past the new text.
func (sb *SliceBuffer) Replace(span types.Span, text []byte) (types.Position, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	n := span.Normalized()
	sb.delete(n.Start, n.End)
	if len(text) == 0 {
		start, _ := sb.validatePosition(n.Start)
		return start, nil
	}
	return sb.insert(n.Start, text)
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
