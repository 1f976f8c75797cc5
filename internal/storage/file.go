package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// BackupSuffix is appended to the document path for the one-time
	// backup written before the first edit of a session.
	BackupSuffix = ".hollow-backup"

	tempSuffix = ".hollow-tmp"
)

// FileStore loads and saves one document file. It remembers the content as
// originally loaded so the first edit can snapshot it to a backup file.
type FileStore struct {
	path        string
	original    string
	hasOriginal bool
	backedUp    bool
}

// NewFileStore creates a store for the given path. Nothing is read until
// Load.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the document, normalizing CRLF and bare CR line endings to LF.
// A missing file is an empty document, not an error.
func (f *FileStore) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		f.original = ""
		f.hasOriginal = false
		f.backedUp = false
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", f.path, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	f.original = content
	f.hasOriginal = true
	f.backedUp = false
	return content, nil
}

// Save writes the document atomically: the content goes to a temp file in
// the same directory, gains a trailing newline if absent, is synced, and
// replaces the target by rename.
func (f *FileStore) Save(content string) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save %s: %w", f.path, err)
		}
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	tmp := f.path + tempSuffix
	if err := writeAndSync(tmp, content); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	return nil
}

// Backup snapshots the originally loaded content to the backup path. It
// runs at most once per Load and is a no-op when the document did not exist
// on disk.
func (f *FileStore) Backup() error {
	if f.backedUp {
		return nil
	}
	f.backedUp = true
	if !f.hasOriginal {
		return nil
	}
	if err := os.WriteFile(f.path+BackupSuffix, []byte(f.original), 0o644); err != nil {
		return fmt.Errorf("backup %s: %w", f.path, err)
	}
	return nil
}

func writeAndSync(path, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(content); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
