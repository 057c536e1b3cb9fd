// Package credstore persists the bearer credential the client attaches to
// every request. It is written once at login and cleared at logout or when
// any call comes back unauthorized.
package credstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the credential capability the client layer depends on. Injected
// rather than read from ambient globals so the core is testable without a
// real filesystem.
type Store interface {
	Token() (string, bool)
	Save(token string) error
	Clear() error
}

type storedCredential struct {
	Token string `json:"token"`
}

// File persists the credential as a JSON file under the user config dir.
type File struct {
	path string
}

// NewFile places the credential file under the platform config dir
// (e.g. ~/.config/devdash/credentials.json).
func NewFile() (*File, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewFileAt(filepath.Join(dir, "devdash", "credentials.json")), nil
}

func NewFileAt(path string) *File {
	return &File{path: path}
}

func (f *File) Token() (string, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", false
	}
	var cred storedCredential
	if err := json.Unmarshal(data, &cred); err != nil {
		return "", false
	}
	return cred.Token, cred.Token != ""
}

func (f *File) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(storedCredential{Token: token})
	if err != nil {
		return err
	}
	// 0600: the token grants full API access
	return os.WriteFile(f.path, data, 0o600)
}

func (f *File) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Memory is an in-process store for tests and one-shot invocations.
type Memory struct {
	token string
}

func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Token() (string, bool) {
	return m.token, m.token != ""
}

func (m *Memory) Save(token string) error {
	m.token = token
	return nil
}

func (m *Memory) Clear() error {
	m.token = ""
	return nil
}
