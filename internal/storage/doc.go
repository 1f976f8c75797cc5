// Package storage persists documents to disk. The editing core never does
// I/O; the session drives a FileStore between fully-applied edits, so the
// file on disk is always a complete document.
package storage
