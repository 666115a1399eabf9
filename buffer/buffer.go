package buffer

import (
	"fmt"
	"io"
	"strings"
)

// Direction selects where Move steps the cursor.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Buffer is the document: a doubly-linked sequence of rows plus the cursor
// locating the current row and char. A separate status row, not part of the
// document chain, holds command-line and mode text.
//
// Invariants: 0 <= CurrentRow() < RowCount(); CurrentChar() <= Current().Len()
// (equality is the past-end marker, valid while an append-style insert mode
// is active).
type Buffer struct {
	head        *Row
	current     *Row
	currentRow  int
	currentChar int
	rowCount    int
	status      *Row
}

// New builds a buffer from text, splitting on '\n'. Empty text yields a
// single empty row; the document always has at least one row.
func New(text string) *Buffer {
	lines := strings.Split(text, "\n")

	b := &Buffer{status: newRow("")}
	var last *Row
	for _, line := range lines {
		r := newRow(line)
		if last == nil {
			b.head = r
		} else {
			last.next = r
			r.prev = last
		}
		last = r
		b.rowCount++
	}
	b.current = b.head
	return b
}

// Load reads the whole of r and builds a buffer from it.
func Load(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffer: load document: %w", err)
	}
	return New(string(data)), nil
}

// First returns the first row of the document.
func (b *Buffer) First() *Row { return b.head }

// Current returns the row under the cursor.
func (b *Buffer) Current() *Row { return b.current }

// CurrentRow returns the 0-based index of the row under the cursor.
func (b *Buffer) CurrentRow() int { return b.currentRow }

// CurrentChar returns the char index of the cursor within the current row.
func (b *Buffer) CurrentChar() int { return b.currentChar }

// RowCount returns the number of rows in the document.
func (b *Buffer) RowCount() int { return b.rowCount }

// Status returns the status row.
func (b *Buffer) Status() *Row { return b.status }

// Text returns the document content with rows joined by '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for r := b.head; r != nil; r = r.next {
		if r != b.head {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.Text())
	}
	return sb.String()
}

// Move steps the cursor one row or char in the given direction. Moves past a
// boundary are no-ops. Vertical moves clamp the char cursor to the last char
// of the destination row.
func (b *Buffer) Move(d Direction) {
	switch d {
	case Left:
		if b.currentChar > 0 {
			b.currentChar--
		}
	case Right:
		if b.currentChar < b.current.Len()-1 {
			b.currentChar++
		}
	case Up:
		if b.current.prev != nil {
			b.current = b.current.prev
			b.currentRow--
			b.clampChar()
		}
	case Down:
		if b.current.next != nil {
			b.current = b.current.next
			b.currentRow++
			b.clampChar()
		}
	}
}

func (b *Buffer) clampChar() {
	if max := b.current.Len() - 1; b.currentChar > max {
		b.currentChar = max
	}
	if b.currentChar < 0 {
		b.currentChar = 0
	}
}
