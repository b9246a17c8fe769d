package store

import (
	"errors"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// tokenKey is the fixed storage key for the bearer credential, matching the
// single slot the web client keeps in local storage.
const tokenKey = "token"

// CredentialStore persists the bearer token across runs. The token is the
// only client-persisted state; it survives until logout or a failed
// verification clears it.
type CredentialStore interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// OpenCredentials creates a diskv-backed credential store under the config's
// base path.
func OpenCredentials(cfg Config) (CredentialStore, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &credentials{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(s string) []string { return nil },
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type credentials struct {
	d *diskv.Diskv
}

func (c *credentials) Token() (string, error) {
	val, err := c.d.Read(tokenKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(val)), nil
}

func (c *credentials) SetToken(token string) error {
	return c.d.Write(tokenKey, []byte(token))
}

func (c *credentials) Clear() error {
	err := c.d.Erase(tokenKey)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
