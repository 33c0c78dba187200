package ecc

import (
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/athanorlabs/go-ecc/scalar"
)

// SignatureToDER converts an r || s or recoverable signature to the ASN.1
// DER form SEQUENCE { r INTEGER, s INTEGER }. The recovery byte is dropped.
func (c *Curve) SignatureToDER(signature []byte) ([]byte, error) {
	sig, err := c.ParseSignature(signature)
	if err != nil {
		return nil, err
	}
	defer sig.Free()
	if err := c.checkRS(sig); err != nil {
		return nil, err
	}

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(sig.R.Big())
		b.AddASN1BigInt(sig.S.Big())
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, newError(ErrMalformedSignature, "encoding DER signature: "+err.Error())
	}
	return der, nil
}

// SignatureFromDER parses a DER signature and returns it as 2L byte r || s.
func (c *Curve) SignatureFromDER(der []byte) ([]byte, error) {
	r, s := new(big.Int), new(big.Int)
	var inner cryptobyte.String
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, newError(ErrMalformedSignature, "invalid ASN.1 signature")
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return nil, newError(ErrOutOfBounds, "r and s must be positive")
	}

	sig := &Signature{R: scalar.FromBytes(r.Bytes()), S: scalar.FromBytes(s.Bytes())}
	defer sig.Free()
	if err := c.checkRS(sig); err != nil {
		return nil, err
	}
	return c.EncodeSignature(sig)
}

