// Package layout computes the word-wrapped visual presentation of a
// document. Wrapping is a pure function of (text, width): rendering and
// cursor placement both call into it and therefore always agree on row
// boundaries.
package layout
