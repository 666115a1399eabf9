package buffer

import "testing"

func TestInsertChar_InsertsBeforeCursor(t *testing.T) {
	b := New("bc")

	b.InsertChar('a')
	if got := b.Current().Text(); got != "abc" {
		t.Fatalf("row: got %q, want %q", got, "abc")
	}
	// the char that was under the cursor shifted right with it
	if got := b.CurrentChar(); got != 1 {
		t.Fatalf("char cursor: got %d, want 1", got)
	}
}

func TestInsertChar_EmptyRowLeavesCursorPastEnd(t *testing.T) {
	b := New("")

	b.InsertChar('x')
	if got := b.Current().Text(); got != "x" {
		t.Fatalf("row: got %q, want %q", got, "x")
	}
	if got := b.CurrentChar(); got != 1 {
		t.Fatalf("char cursor: got %d, want past-end 1", got)
	}
}

func TestAppendChar_InsertsAfterCursor(t *testing.T) {
	b := New("ac")

	b.AppendChar('b')
	if got := b.Current().Text(); got != "abc" {
		t.Fatalf("row: got %q, want %q", got, "abc")
	}
	if got := b.CurrentChar(); got != 1 {
		t.Fatalf("char cursor: got %d, want 1 (on the new char)", got)
	}
}

func TestAppendChar_EmptyRow(t *testing.T) {
	b := New("")

	b.AppendChar('x')
	if got := b.Current().Text(); got != "x" {
		t.Fatalf("row: got %q, want %q", got, "x")
	}
	if got := b.CurrentChar(); got != 0 {
		t.Fatalf("char cursor: got %d, want 0", got)
	}
}

// Front-insert typing at end-of-row leaves the char cursor past-end; a
// following append must land after the last char instead of indexing past
// the row.
func TestAppendChar_PastEndCursorAppendsAtEnd(t *testing.T) {
	b := New("")
	b.InsertChar('x')
	if got := b.CurrentChar(); got != 1 {
		t.Fatalf("char cursor: got %d, want past-end 1", got)
	}

	b.AppendChar('y')
	if got := b.Current().Text(); got != "xy" {
		t.Fatalf("row: got %q, want %q", got, "xy")
	}
	if got := b.CurrentChar(); got != 1 {
		t.Fatalf("char cursor: got %d, want 1 (on the new char)", got)
	}
}

func TestAppendChar_AtEndOfRowAppends(t *testing.T) {
	b := New("ab")
	b.Move(Right)

	b.AppendChar('c')
	if got := b.Current().Text(); got != "abc" {
		t.Fatalf("row: got %q, want %q", got, "abc")
	}
	if got := b.CurrentChar(); got != 2 {
		t.Fatalf("char cursor: got %d, want 2", got)
	}
}

func TestDeleteChar_AtCursor(t *testing.T) {
	b := New("abc")

	b.DeleteChar()
	if got := b.Current().Text(); got != "bc" {
		t.Fatalf("row: got %q, want %q", got, "bc")
	}
	if got := b.CurrentChar(); got != 0 {
		t.Fatalf("char cursor: got %d, want 0", got)
	}
}

func TestDeleteChar_LastCharClampsCursor(t *testing.T) {
	b := New("abc")
	b.Move(Right)
	b.Move(Right)

	b.DeleteChar()
	if got := b.Current().Text(); got != "ab" {
		t.Fatalf("row: got %q, want %q", got, "ab")
	}
	if got := b.CurrentChar(); got != 1 {
		t.Fatalf("char cursor: got %d, want 1", got)
	}
}

func TestDeleteChar_EmptyRowIsNoop(t *testing.T) {
	b := New("")

	b.DeleteChar()
	if got := b.Current().Len(); got != 0 {
		t.Fatalf("row length: got %d, want 0", got)
	}
}

func TestSplitRow_MidRow(t *testing.T) {
	b := New("hello")
	b.Move(Right)
	b.Move(Right)

	b.SplitRow()

	if got := b.RowCount(); got != 2 {
		t.Fatalf("row count: got %d, want 2", got)
	}
	if got := b.CurrentRow(); got != 1 {
		t.Fatalf("current row: got %d, want 1", got)
	}
	if got := b.CurrentChar(); got != 0 {
		t.Fatalf("char cursor: got %d, want 0", got)
	}
	if got := b.Current().Text(); got != "llo" {
		t.Fatalf("new row: got %q, want %q", got, "llo")
	}
	if got := b.Current().Prev().Text(); got != "he" {
		t.Fatalf("old row: got %q, want %q", got, "he")
	}
}

func TestSplitRow_AtStartMovesWholeRow(t *testing.T) {
	b := New("abc")

	b.SplitRow()

	if got := b.Current().Prev().Len(); got != 0 {
		t.Fatalf("old row length: got %d, want 0", got)
	}
	if got := b.Current().Text(); got != "abc" {
		t.Fatalf("new row: got %q, want %q", got, "abc")
	}
}

func TestSplitRow_EmptyRow(t *testing.T) {
	b := New("")

	b.SplitRow()

	if got := b.RowCount(); got != 2 {
		t.Fatalf("row count: got %d, want 2", got)
	}
	if b.Current().Len() != 0 || b.Current().Prev().Len() != 0 {
		t.Fatal("both rows must be empty")
	}
}

func TestSplitRow_RelinksNeighbors(t *testing.T) {
	b := New("ab\ncd")
	b.Move(Right)

	b.SplitRow()

	if got := b.Text(); got != "a\nb\ncd" {
		t.Fatalf("document: got %q, want %q", got, "a\nb\ncd")
	}
	last := b.Current().Next()
	if last == nil || last.Prev() != b.Current() {
		t.Fatal("split must relink the following row's prev pointer")
	}
}

// The sentinel sequence handle_enter relies on: appending a placeholder at
// the end of a row, splitting, then deleting it yields an empty new row and
// an untouched original.
func TestSplitRow_PlaceholderSequenceAtEndOfRow(t *testing.T) {
	b := New("abc")
	b.Move(Right)
	b.Move(Right) // last char

	b.AppendChar('0')
	b.SplitRow()
	b.DeleteChar()

	if got := b.Current().Prev().Text(); got != "abc" {
		t.Fatalf("original row: got %q, want %q", got, "abc")
	}
	if got := b.Current().Len(); got != 0 {
		t.Fatalf("new row length: got %d, want 0", got)
	}
	if got := b.RowCount(); got != 2 {
		t.Fatalf("row count: got %d, want 2", got)
	}
}

func TestJoinRow_MergesIntoPredecessor(t *testing.T) {
	b := New("ab\ncd")
	b.Move(Down)

	b.JoinRow()

	if got := b.RowCount(); got != 1 {
		t.Fatalf("row count: got %d, want 1", got)
	}
	if got := b.Current().Text(); got != "abcd" {
		t.Fatalf("joined row: got %q, want %q", got, "abcd")
	}
	if got := b.CurrentRow(); got != 0 {
		t.Fatalf("current row: got %d, want 0", got)
	}
	if got := b.CurrentChar(); got != 2 {
		t.Fatalf("cursor at join boundary: got %d, want 2", got)
	}
}

func TestJoinRow_EmptyPredecessor(t *testing.T) {
	b := New("\nxy")
	b.Move(Down)

	b.JoinRow()

	if got := b.Current().Text(); got != "xy" {
		t.Fatalf("joined row: got %q, want %q", got, "xy")
	}
	if got := b.CurrentChar(); got != 0 {
		t.Fatalf("cursor: got %d, want 0", got)
	}
}

func TestJoinRow_EmptyCurrentClampsCursor(t *testing.T) {
	b := New("ab\n")
	b.Move(Down)

	b.JoinRow()

	if got := b.Current().Text(); got != "ab" {
		t.Fatalf("joined row: got %q, want %q", got, "ab")
	}
	if got := b.CurrentChar(); got != 1 {
		t.Fatalf("cursor clamped to last char: got %d, want 1", got)
	}
}

func TestJoinRow_FirstRowIsNoop(t *testing.T) {
	b := New("ab\ncd")

	b.JoinRow()

	if got := b.RowCount(); got != 2 {
		t.Fatalf("row count: got %d, want 2", got)
	}
	if got := b.CurrentRow(); got != 0 {
		t.Fatalf("current row: got %d, want 0", got)
	}
}

func TestJoinRow_RelinksFollowingRow(t *testing.T) {
	b := New("a\nb\nc")
	b.Move(Down)

	b.JoinRow()

	if got := b.Text(); got != "ab\nc" {
		t.Fatalf("document: got %q, want %q", got, "ab\nc")
	}
	if b.Current().Next().Prev() != b.Current() {
		t.Fatal("following row's prev pointer must point at the joined row")
	}
}
