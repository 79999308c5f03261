package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Argon2id parameters for client secret hashing.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

var (
	pepperMu   sync.RWMutex
	pepper     string
	pepperFile string
	pepperOnce bool
)

// SetPepperPath configures the file the pepper is read from. The file is
// created with a fresh random pepper on first use when it does not exist.
// An empty path disables peppering.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperFile = file
	pepper = ""
	pepperOnce = false
}

// LoadPepper reads (or creates) the configured pepper file eagerly so that a
// misconfigured path fails at startup instead of on the first hash.
func LoadPepper() error {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	return loadPepperLocked()
}

// GetPepper returns the active pepper, loading it on first use. A pepper
// that cannot be loaded yields the empty string; call LoadPepper at startup
// to surface that error.
func GetPepper() string {
	pepperMu.RLock()
	if pepperOnce {
		p := pepper
		pepperMu.RUnlock()
		return p
	}
	pepperMu.RUnlock()

	pepperMu.Lock()
	defer pepperMu.Unlock()
	if !pepperOnce {
		_ = loadPepperLocked()
	}
	return pepper
}

func loadPepperLocked() error {
	pepperOnce = true
	if pepperFile == "" {
		pepper = ""
		return nil
	}

	path := filepath.Clean(pepperFile)
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		pepper = strings.TrimSpace(string(raw))
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read pepper: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create pepper dir: %w", err)
	}

	buf := make([]byte, keyLength)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate pepper: %w", err)
	}
	generated := base64.RawURLEncoding.EncodeToString(buf)

	if err := os.WriteFile(path, []byte(generated), 0o600); err != nil {
		return fmt.Errorf("write pepper: %w", err)
	}
	pepper = generated
	return nil
}
