package ecc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignature_Serde(t *testing.T) {
	c := newTestCurve(t, "secp256k1")
	ks := knownSignatures[0]
	rs := mustHex(t, ks.sig)

	sig, err := c.ParseSignature(rs)
	require.NoError(t, err)
	require.Nil(t, sig.Recovery)
	ser, err := c.EncodeSignature(sig)
	require.NoError(t, err)
	require.Equal(t, rs, ser)

	rec := append([]byte{ks.prefix}, rs...)
	deser, err := c.ParseSignature(rec)
	require.NoError(t, err)
	require.NotNil(t, deser.Recovery)
	require.Equal(t, RecoveryID{Odd: true}, *deser.Recovery)
	require.True(t, deser.Compressed)
	require.True(t, sig.R.Equal(deser.R))
	require.True(t, sig.S.Equal(deser.S))

	ser, err = c.EncodeSignature(deser)
	require.NoError(t, err)
	require.Equal(t, rec, ser)

	sig.Free()
	deser.Free()
}

func TestSignature_SerdeShortValues(t *testing.T) {
	c := newTestCurve(t, "secp521r1")
	in := make([]byte, 2*66)
	in[65] = 0x01
	in[131] = 0x02

	sig, err := c.ParseSignature(in)
	require.NoError(t, err)
	defer sig.Free()
	require.Equal(t, 1, sig.R.BitLen())
	require.Equal(t, 2, sig.S.BitLen())

	out, err := c.EncodeSignature(sig)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestParseSignature_Malformed(t *testing.T) {
	c := newTestCurve(t, "prime256v1")

	for _, size := range []int{0, 1, 63, 66, 128} {
		_, err := c.ParseSignature(make([]byte, size))
		require.ErrorIs(t, err, ErrMalformedSignature, size)
	}

	bad := make([]byte, 65)
	bad[0] = 35
	_, err := c.ParseSignature(bad)
	require.ErrorIs(t, err, ErrMalformedSignature)
}

func TestEncodeSignature_TooWide(t *testing.T) {
	c := newTestCurve(t, "secp192k1")
	wide, err := c.ParseSignature(make([]byte, 48))
	require.NoError(t, err)
	wide.R = c.Order().Clone().Mul(c.Order().Clone())
	_, err = c.EncodeSignature(wide)
	require.ErrorIs(t, err, ErrEncodingTooShort)
}

func TestNormalizeS(t *testing.T) {
	c := newTestCurve(t, "secp256k1")
	ks := knownSignatures[0]
	rs := mustHex(t, ks.sig)
	pub, err := c.PrivateToPublic(mustHex(t, ks.priv))
	require.NoError(t, err)

	// the known signature already has a low s
	out, err := c.NormalizeS(rs)
	require.NoError(t, err)
	require.Equal(t, rs, out)

	sig, err := c.ParseSignature(append([]byte{ks.prefix}, rs...))
	require.NoError(t, err)
	highS, err := sig.S.NegMod(c.Order())
	require.NoError(t, err)
	sig.S = highS
	sig.Recovery.Odd = !sig.Recovery.Odd
	high, err := c.EncodeSignature(sig)
	require.NoError(t, err)

	// a high s signature still verifies and recovers the same key
	ok, err := c.VerifyRecoverable(high, knownSubject[:], pub)
	require.NoError(t, err)
	require.True(t, ok)
	got, err := c.Recover(high, knownSubject[:])
	require.NoError(t, err)
	require.Equal(t, pub, got)

	low, err := c.NormalizeS(high)
	require.NoError(t, err)
	require.Equal(t, append([]byte{ks.prefix}, rs...), low)

	lowRS, err := c.NormalizeS(high[1:])
	require.NoError(t, err)
	require.Equal(t, rs, lowRS)

	_, err = c.NormalizeS(make([]byte, 64))
	require.ErrorIs(t, err, ErrOutOfBounds)
}
