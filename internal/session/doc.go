// Package session owns the live editing state: the editor, the search
// engine, the active mode, pending input state, and the persistence
// collaborator. It applies one dispatched action at a time, synchronously
// and to completion, so a save can never observe a half-applied edit.
package session
