// Package rope provides the line-indexed text storage backing the editor.
//
// A Rope holds the document as a sequence of lines and exposes conversions
// between the three coordinate spaces the editor works in: document-wide
// character offsets (CharOffset), document-wide byte offsets, and logical
// line / byte-column pairs. All mutation happens through character offsets,
// which is the index space undo records are stored in.
//
// Content is always valid UTF-8 with line endings normalized to \n by the
// layers above; the rope itself never sees \r.
package rope
