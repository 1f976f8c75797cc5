// Package search implements case-insensitive literal substring search over
// the flattened document text. All positions are document-wide character
// offsets; the session converts them to and from cursor coordinates.
package search
