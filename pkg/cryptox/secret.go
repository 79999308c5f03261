package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrSecretMismatch is returned by VerifySecret when the plaintext does not
// produce the stored hash.
var ErrSecretMismatch = errors.New("secret does not match")

// HashSecret derives a PHC-format Argon2id hash for a client secret. The
// configured pepper is appended to the secret before hashing.
func HashSecret(secret string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(secret+GetPepper()), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifySecret checks secret against a hash produced by HashSecret in
// constant time. Malformed hashes are reported as errors distinct from
// ErrSecretMismatch.
func VerifySecret(secret, encoded string) error {
	p, err := parsePHC(encoded)
	if err != nil {
		return err
	}

	computed := argon2.IDKey(
		[]byte(secret+GetPepper()),
		p.salt,
		p.iterations,
		p.memory,
		p.parallelism,
		uint32(len(p.hash)), // #nosec G115 - hash length is bounded by the encoder
	)

	if subtle.ConstantTimeCompare(computed, p.hash) != 1 {
		return ErrSecretMismatch
	}
	return nil
}

// GenerateClientSecret mints a 256-bit secret for a confidential client. It is
// shown to the operator once and only its hash is stored.
func GenerateClientSecret() (string, error) {
	return GenerateToken(TokenSize256)
}

type phc struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	hash        []byte
}

// parsePHC splits $argon2id$v=19$m=X,t=Y,p=Z$salt$hash.
func parsePHC(encoded string) (phc, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return phc{}, errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return phc{}, errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return phc{}, errors.New("invalid hash format: wrong version")
	}

	var p phc
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return phc{}, fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return phc{}, fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	if p.hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return phc{}, fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}
	if len(p.hash) == 0 {
		return phc{}, errors.New("invalid hash format: empty hash")
	}

	return p, nil
}
