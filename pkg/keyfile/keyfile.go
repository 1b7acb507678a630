// Package keyfile loads signing keys stored in the solana-keygen JSON format:
// a JSON array holding the 64 byte secret key (seed followed by public key).
package keyfile

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"os"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

var (
	ErrInvalidKeyFile = errors.New("invalid key file")
)

// Keypair holds a signing key. Only the public half is ever rendered.
type Keypair struct {
	private ed25519.PrivateKey
}

// Load reads and validates the key file at path.
func Load(path string) (*Keypair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key file %s", path)
	}

	kp, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return kp, nil
}

// Parse decodes a JSON number array into a Keypair. The trailing public key
// must match the one derived from the leading seed.
func Parse(raw []byte) (*Keypair, error) {
	// Decoding into []byte would expect base64, so go through wider ints.
	var values []uint16
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrap(ErrInvalidKeyFile, err.Error())
	}

	if len(values) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(ErrInvalidKeyFile, "expected %d bytes, got %d", ed25519.PrivateKeySize, len(values))
	}

	secret := make([]byte, ed25519.PrivateKeySize)
	for i, v := range values {
		if v > 0xff {
			return nil, errors.Wrapf(ErrInvalidKeyFile, "value %d at index %d is not a byte", v, i)
		}
		secret[i] = byte(v)
	}

	derived := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], secret[ed25519.SeedSize:]) {
		return nil, errors.Wrap(ErrInvalidKeyFile, "public key does not match seed")
	}

	return &Keypair{private: derived}, nil
}

func (k *Keypair) PrivateKey() ed25519.PrivateKey {
	return k.private
}

func (k *Keypair) PublicKey() ed25519.PublicKey {
	return k.private.Public().(ed25519.PublicKey)
}

func (k *Keypair) String() string {
	return base58.Encode(k.PublicKey())
}
