package ecc

import (
	"crypto/ecdh"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestECDH_Symmetric(t *testing.T) {
	for _, c := range allTestCurves(t) {
		a, err := c.NewPrivateKey()
		require.NoError(t, err)
		b, err := c.NewPrivateKey()
		require.NoError(t, err)
		pubA, err := c.PrivateToPublic(a)
		require.NoError(t, err)
		pubB, err := c.PrivateToPublic(b)
		require.NoError(t, err)

		ab, err := c.ECDH(a, pubB)
		require.NoError(t, err, c.Name())
		ba, err := c.ECDH(b, pubA)
		require.NoError(t, err, c.Name())
		require.Equal(t, ab, ba, c.Name())
		require.Len(t, ab, c.PublicKeyLength())
	}
}

func TestECDH_KnownAnswer(t *testing.T) {
	c := newTestCurve(t, "secp256k1")
	a := make([]byte, 32)
	copy(a[24:], mustHex(t, "1234567890abcdef"))
	b := make([]byte, 32)
	copy(b[24:], mustHex(t, "fedcba0987654321"))

	pubB, err := c.PrivateToPublic(b)
	require.NoError(t, err)
	shared, err := c.ECDH(a, pubB)
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "31d81b1b68b98025811c7e773520130f1646661e83d54a0f607f7f04558de5f3"), shared)
}

func TestECDH_MatchesStdlib(t *testing.T) {
	tests := []struct {
		name  string
		curve ecdh.Curve
	}{
		{"prime256v1", ecdh.P256()},
		{"secp384r1", ecdh.P384()},
		{"secp521r1", ecdh.P521()},
	}
	for _, test := range tests {
		c := newTestCurve(t, test.name)
		a, err := c.NewPrivateKey()
		require.NoError(t, err)
		b, err := c.NewPrivateKey()
		require.NoError(t, err)
		pubB, err := c.PrivateToPublic(b)
		require.NoError(t, err)

		ours, err := c.ECDH(a, pubB)
		require.NoError(t, err, test.name)

		stdPriv, err := test.curve.NewPrivateKey(a)
		require.NoError(t, err, test.name)
		stdPub, err := test.curve.NewPublicKey(pubB.Uncompressed())
		require.NoError(t, err, test.name)
		theirs, err := stdPriv.ECDH(stdPub)
		require.NoError(t, err, test.name)

		require.Equal(t, theirs, ours, test.name)
	}
}

func TestECDH_RejectsInvalidPeer(t *testing.T) {
	c := newTestCurve(t, "secp256k1")
	a, err := c.NewPrivateKey()
	require.NoError(t, err)
	pub, err := c.PrivateToPublic(a)
	require.NoError(t, err)

	offCurve := PublicKey{X: pub.X, Y: append([]byte(nil), pub.Y...)}
	offCurve.Y[31] ^= 0x01
	_, err = c.ECDH(a, offCurve)
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, err = c.ECDH(a, PublicKey{X: make([]byte, 32), Y: make([]byte, 32)})
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, err = c.ECDH(a, PublicKey{X: pub.X[1:], Y: pub.Y})
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, err = c.ECDH(make([]byte, 32), pub)
	require.ErrorIs(t, err, ErrInvalidScalar)
}

func TestSharedKey(t *testing.T) {
	c := newTestCurve(t, "prime256v1")
	a, err := c.NewPrivateKey()
	require.NoError(t, err)
	b, err := c.NewPrivateKey()
	require.NoError(t, err)
	pubA, err := c.PrivateToPublic(a)
	require.NoError(t, err)
	pubB, err := c.PrivateToPublic(b)
	require.NoError(t, err)

	k1, err := c.SharedKey(a, pubB, []byte("salt"), []byte("session"), 32)
	require.NoError(t, err)
	k2, err := c.SharedKey(b, pubA, []byte("salt"), []byte("session"), 32)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
	require.Len(t, k1, 32)

	k3, err := c.SharedKey(a, pubB, []byte("salt"), []byte("other"), 32)
	require.NoError(t, err)
	require.NotEqual(t, k1, k3)

	secret, err := c.ECDH(a, pubB)
	require.NoError(t, err)
	require.NotEqual(t, secret, k1)
}

func TestSharedKey_Size(t *testing.T) {
	c := newTestCurve(t, "secp256k1")
	a, err := c.NewPrivateKey()
	require.NoError(t, err)
	pub, err := c.PrivateToPublic(a)
	require.NoError(t, err)

	for _, size := range []int{0, -1, 255*32 + 1} {
		_, err = c.SharedKey(a, pub, nil, nil, size)
		require.ErrorIs(t, err, ErrOutOfBounds, size)
	}
	k, err := c.SharedKey(a, pub, nil, nil, 255*32)
	require.NoError(t, err)
	require.Len(t, k, 255*32)
}
