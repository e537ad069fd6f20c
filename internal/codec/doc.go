// Package codec converts notes to and from their external forms: the JSON
// backup array and the plain-text rendering used for sharing a single note.
package codec
