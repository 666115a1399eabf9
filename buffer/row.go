package buffer

// Row is one line of text: an ordered, mutable rune sequence linked to its
// neighbors for O(1) walks in either direction.
type Row struct {
	chars []rune
	prev  *Row
	next  *Row
	dirty bool
}

func newRow(text string) *Row {
	return &Row{chars: []rune(text)}
}

// Len returns the number of runes in the row.
func (r *Row) Len() int { return len(r.chars) }

// Rune returns the rune at index i. i must be in [0, Len()).
func (r *Row) Rune(i int) rune { return r.chars[i] }

// Text returns the row content as a string.
func (r *Row) Text() string { return string(r.chars) }

// Prev returns the previous row, or nil for the first row.
func (r *Row) Prev() *Row { return r.prev }

// Next returns the next row, or nil for the last row.
func (r *Row) Next() *Row { return r.next }

// Dirty reports whether the row changed since the renderer last drew it.
func (r *Row) Dirty() bool { return r.dirty }

// MarkDirty flags the row for redraw.
func (r *Row) MarkDirty() { r.dirty = true }

// ClearDirty resets the redraw flag. Called by the renderer after drawing.
func (r *Row) ClearDirty() { r.dirty = false }

// Clear removes every char from the row. Used for status-row rewrites.
func (r *Row) Clear() {
	r.chars = r.chars[:0]
	r.dirty = true
}

// AddChar appends c at the end of the row.
func (r *Row) AddChar(c rune) {
	r.chars = append(r.chars, c)
	r.dirty = true
}

// DropChar removes the last char of the row. No-op on an empty row.
func (r *Row) DropChar() {
	if len(r.chars) == 0 {
		return
	}
	r.chars = r.chars[:len(r.chars)-1]
	r.dirty = true
}

func (r *Row) insertAt(i int, c rune) {
	r.chars = append(r.chars, 0)
	copy(r.chars[i+1:], r.chars[i:])
	r.chars[i] = c
	r.dirty = true
}

func (r *Row) deleteAt(i int) {
	r.chars = append(r.chars[:i], r.chars[i+1:]...)
	r.dirty = true
}
