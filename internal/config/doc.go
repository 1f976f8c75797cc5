// Package config reads and writes the application's JSON configuration
// file. Every field has a default; a missing file or missing key silently
// falls back to it.
package config
