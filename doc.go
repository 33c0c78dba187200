// Package ecc implements recoverable ECDSA signing, signature verification,
// public key recovery, Diffie-Hellman key agreement and BIP32-style child
// key derivation over a set of named short Weierstrass curves.
//
// A Curve is created once per curve name and may be shared by any number of
// goroutines:
//
//	curve, err := ecc.NewCurve("secp256k1")
//	if err != nil {
//		return err
//	}
//	priv, err := curve.NewPrivateKey()
//	if err != nil {
//		return err
//	}
//	defer priv.Zeroize()
//
//	sig, err := curve.Sign(digest, priv, ecc.SignOptions{Recoverable: true, Compressed: true})
//	if err != nil {
//		return err
//	}
//	pub, err := curve.Recover(sig, digest)
//
// The engine never hashes messages. Callers pass an already computed digest,
// the subject, of which only the leading ceil(bitlen(n)/8) bytes are used.
//
// Every fixed width field (private keys, coordinates, r and s, ECDH output)
// is PublicKeyLength bytes long, big-endian and left padded with zeros.
package ecc
