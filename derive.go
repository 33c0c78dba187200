package ecc

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"

	"github.com/athanorlabs/go-ecc/scalar"
)

var masterKey = []byte("Bitcoin seed")

// DeriveChild deterministically derives a private key from seed and index:
//
//	I  = HMAC-SHA512("Bitcoin seed", seed)
//	k1 = I[0:32] mod n, chain = I[32:64]
//	I2 = HMAC-SHA512(chain, compress(k1·G) || be32(index))
//	k  = (k1 + I2[0:32]) mod n
//
// It fails with ErrInvalidScalar if k1 or k is zero.
func (c *Curve) DeriveChild(seed []byte, index uint32) (PrivateKey, error) {
	n := c.Order()

	mac := hmac.New(sha512.New, masterKey)
	mac.Write(seed)
	master := mac.Sum(nil)
	defer ZeroizeBytes(master)

	il := scalar.FromBytes(master[:32])
	defer il.Free()
	k1, err := il.Mod(n)
	if err != nil {
		return nil, err
	}
	defer k1.Free()
	if k1.IsZero() {
		return nil, newError(ErrInvalidScalar, "master key is zero modulo the group order")
	}

	k1Bytes, err := k1.BytesWidth(c.length)
	if err != nil {
		return nil, err
	}
	priv := PrivateKey(k1Bytes)
	defer priv.Zeroize()
	pub, err := c.PrivateToPublic(priv)
	if err != nil {
		return nil, err
	}

	msg := pub.Compressed()
	msg = binary.BigEndian.AppendUint32(msg, index)

	mac = hmac.New(sha512.New, master[32:])
	mac.Write(msg)
	child := mac.Sum(nil)
	defer ZeroizeBytes(child)

	k2 := scalar.FromBytes(child[:32])
	defer k2.Free()
	sum := k1.Add(k2)
	defer sum.Free()
	k, err := sum.Mod(n)
	if err != nil {
		return nil, err
	}
	defer k.Free()
	if k.IsZero() {
		return nil, newError(ErrInvalidScalar, "derived key is zero")
	}

	out, err := k.BytesWidth(c.length)
	if err != nil {
		return nil, err
	}
	return out, nil
}
