package buffer

// InsertChar inserts c before the cursor in the current row. The char under
// the cursor keeps its identity and shifts right, so the char index
// increments. Front-insert typing.
func (b *Buffer) InsertChar(c rune) {
	b.current.insertAt(b.currentChar, c)
	b.currentChar++
}

// AppendChar inserts c immediately after the cursor and moves the cursor
// onto it; on an empty row the new char becomes the first. Back-insert
// typing: at the end of a row this appends at the end. A past-end cursor
// (left behind by front-insert typing at end-of-row) also appends at the
// end, leaving the cursor on the new last char.
func (b *Buffer) AppendChar(c rune) {
	if b.current.Len() == 0 {
		b.current.insertAt(0, c)
		b.currentChar = 0
		return
	}
	if b.currentChar >= b.current.Len() {
		b.current.insertAt(b.current.Len(), c)
		b.currentChar = b.current.Len() - 1
		return
	}
	b.current.insertAt(b.currentChar+1, c)
	b.currentChar++
}

// DeleteChar removes the char under the cursor. The cursor keeps its index
// (now addressing the char that slid in), clamping to the new last char when
// the removed char was last. No-op on an empty row.
func (b *Buffer) DeleteChar() {
	if b.current.Len() == 0 {
		return
	}
	if b.currentChar >= b.current.Len() {
		b.currentChar = b.current.Len() - 1
	}
	b.current.deleteAt(b.currentChar)
	b.clampChar()
}

// SplitRow divides the current row at the cursor: the chars from the cursor
// position (inclusive) through end-of-row move to a new row inserted below,
// and the cursor relocates to the start of the new row.
//
// Splitting with the cursor past-end, or on an empty row, yields an empty
// new row.
func (b *Buffer) SplitRow() {
	r := b.current

	tail := make([]rune, len(r.chars)-b.currentChar)
	copy(tail, r.chars[b.currentChar:])
	r.chars = r.chars[:b.currentChar]
	r.dirty = true

	nr := &Row{chars: tail, prev: r, next: r.next, dirty: true}
	if r.next != nil {
		r.next.prev = nr
	}
	r.next = nr

	b.current = nr
	b.currentRow++
	b.currentChar = 0
	b.rowCount++
}

// JoinRow merges the current row into its predecessor and deletes it. The
// cursor relocates to the former boundary: the first char that came from the
// joined row, or the last char of the combined row when nothing followed.
// No-op on the first row.
func (b *Buffer) JoinRow() {
	r := b.current
	p := r.prev
	if p == nil {
		return
	}

	boundary := p.Len()
	p.chars = append(p.chars, r.chars...)
	p.dirty = true

	p.next = r.next
	if r.next != nil {
		r.next.prev = p
	}
	r.prev, r.next = nil, nil

	b.current = p
	b.currentRow--
	b.currentChar = boundary
	b.rowCount--
	b.clampChar()
}
