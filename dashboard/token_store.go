// Package dashboard implements the admin session flow: token storage,
// the api client and the authentication gate with its pollers.
package dashboard

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}

// FileTokenStore keeps a single opaque token in a file, so the session
// survives restarts.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) FileTokenStore {
	return FileTokenStore{
		path: path,
	}
}

func (s FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.WithMessage(err, "read token file")
	}
	return strings.TrimSpace(string(data)), nil
}

func (s FileTokenStore) Save(token string) error {
	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		err := os.MkdirAll(dir, 0o700)
		if err != nil {
			return errors.WithMessage(err, "create token dir")
		}
	}
	err := os.WriteFile(s.path, []byte(token), 0o600)
	if err != nil {
		return errors.WithMessage(err, "write token file")
	}
	return nil
}

func (s FileTokenStore) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.WithMessage(err, "remove token file")
	}
	return nil
}
