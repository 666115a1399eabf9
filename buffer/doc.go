// Package buffer implements the document model for Quill.
//
// A document is a doubly-linked sequence of rows; each row is an ordered
// sequence of runes. The buffer tracks one current row (by index and by a
// direct pointer) and one current char index into it, and exposes the
// cursor-coupled mutation primitives the editor core drives: move, split,
// join, and per-row char edits. Moves past a document boundary are silent
// no-ops.
package buffer
