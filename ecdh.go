package ecc

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDF-SHA256 can expand to at most 255 blocks.
const maxSharedKeySize = 255 * sha256.Size

// ECDH returns the x coordinate of priv·pub as PublicKeyLength bytes. The
// output is raw keying material; use SharedKey or another KDF before using
// it as a symmetric key.
func (c *Curve) ECDH(priv PrivateKey, pub PublicKey) ([]byte, error) {
	d, err := c.privateScalar(priv)
	if err != nil {
		return nil, err
	}
	defer d.Free()

	q, err := c.publicPoint(pub)
	if err != nil {
		return nil, err
	}

	shared, err := c.scalarMultiply(d, q)
	if err != nil {
		return nil, err
	}
	x, _, err := c.affine(shared)
	if err != nil {
		return nil, err
	}
	return c.fixed(x)
}

// SharedKey runs the ECDH secret through HKDF-SHA256 and returns size bytes
// of key material bound to salt and info.
func (c *Curve) SharedKey(priv PrivateKey, pub PublicKey, salt, info []byte, size int) ([]byte, error) {
	if size < 1 || size > maxSharedKeySize {
		return nil, newError(ErrOutOfBounds,
			fmt.Sprintf("shared key size must be in [1, %d], got %d", maxSharedKeySize, size))
	}
	secret, err := c.ECDH(priv, pub)
	if err != nil {
		return nil, err
	}
	defer ZeroizeBytes(secret)

	key := make([]byte, size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), key); err != nil {
		return nil, newError(ErrOutOfBounds, "hkdf: "+err.Error())
	}
	return key, nil
}
