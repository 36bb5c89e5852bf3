// Package render projects a UI-state document to its serialized forms.
//
// The XML path emits a fixed element/attribute schema with elements
// sorted by z-index; the JSON path is a field-for-field projection in
// document order. Both are pure and byte-deterministic for the same
// document.
package render
