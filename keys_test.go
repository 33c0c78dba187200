package ecc

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecc/logging"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

type knownKey struct {
	curve string
	priv  string
	x, y  string
}

var knownKeys = []knownKey{
	{
		curve: "secp256k1",
		priv:  "92f654980b5b56c86c9071193bc9c5d959c6405570c2b04493dc598ed69d0754",
		x:     "e968fa337887aea6dc85dd1f56e352cf2518ae4375726b49bb6c622b864d7fe7",
		y:     "b69b40b9e07ca80fbf0f45ff620c98736d25b1ae2cc302186d82072ccc93b6a6",
	},
	{
		curve: "secp192k1",
		priv:  "d692a45bd6e205530e6152ac9ee5a0036da0c53e133ad8be",
		x:     "067b9bb2f17c5d40cd89cc92f2d838cb31b478e1c4990d9a",
		y:     "b8195aa14bceeb9b3b99f1a2f33ed19a25d04ba38b997e91",
	},
	{
		curve: "prime192v1",
		priv:  "f28fcec1a57167a7611c96530d126296db47a3975aa65663",
		x:     "d936edf82ee3bc619f3e9dcfb76224599f962c8416eec6ad",
		y:     "72fa6abdfe3129fb9fdc790209514f97562ca80a770b1081",
	},
}

func TestPrivateToPublic_KnownKeys(t *testing.T) {
	for _, kk := range knownKeys {
		c := newTestCurve(t, kk.curve)
		pub, err := c.PrivateToPublic(mustHex(t, kk.priv))
		require.NoError(t, err, kk.curve)
		require.Equal(t, mustHex(t, kk.x), pub.X, kk.curve)
		require.Equal(t, mustHex(t, kk.y), pub.Y, kk.curve)
	}
}

func TestPrivateToPublic_Generator(t *testing.T) {
	for _, c := range allTestCurves(t) {
		one := make([]byte, c.PublicKeyLength())
		one[len(one)-1] = 1
		pub, err := c.PrivateToPublic(one)
		require.NoError(t, err, c.Name())

		gx, err := c.fixed(c.params.Gx)
		require.NoError(t, err)
		gy, err := c.fixed(c.params.Gy)
		require.NoError(t, err)
		require.Equal(t, gx, pub.X, c.Name())
		require.Equal(t, gy, pub.Y, c.Name())
	}
}

func TestPrivateToPublic_Double(t *testing.T) {
	c := newTestCurve(t, "secp256k1")
	two := make([]byte, 32)
	two[31] = 2
	pub, err := c.PrivateToPublic(two)
	require.NoError(t, err)
	require.Equal(t, mustHex(t, "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"), pub.X)
	require.Equal(t, mustHex(t, "1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"), pub.Y)
}

func TestParsePrivateKey(t *testing.T) {
	for _, c := range allTestCurves(t) {
		L := c.PublicKeyLength()

		_, err := c.ParsePrivateKey(make([]byte, L))
		require.ErrorIs(t, err, ErrInvalidScalar, c.Name())

		_, err = c.ParsePrivateKey(make([]byte, L-1))
		require.ErrorIs(t, err, ErrInvalidScalar, c.Name())

		n, err := c.Order().Clone().BytesWidth(L)
		require.NoError(t, err)
		_, err = c.ParsePrivateKey(n)
		require.ErrorIs(t, err, ErrInvalidScalar, c.Name())

		_, err = c.PrivateToPublic(n)
		require.ErrorIs(t, err, ErrInvalidScalar, c.Name())

		nMinusOne := append([]byte(nil), n...)
		nMinusOne[L-1]--
		k, err := c.ParsePrivateKey(nMinusOne)
		require.NoError(t, err, c.Name())
		require.Equal(t, PrivateKey(nMinusOne), k)

		// n-1 is -1, so the public key is -G
		pub, err := c.PrivateToPublic(k)
		require.NoError(t, err)
		gx, err := c.fixed(c.params.Gx)
		require.NoError(t, err)
		require.Equal(t, gx, pub.X, c.Name())
		require.NotEqual(t, pub.Y[L-1]&1, byte(c.params.Gy.Bit(0)), c.Name())
	}
}

func TestNewPrivateKey(t *testing.T) {
	for _, c := range allTestCurves(t) {
		seen := make(map[string]struct{})
		for i := 0; i < 8; i++ {
			k, err := c.NewPrivateKey()
			require.NoError(t, err, c.Name())
			require.Len(t, k, c.PublicKeyLength())
			_, err = c.ParsePrivateKey(k)
			require.NoError(t, err, c.Name())
			seen[string(k)] = struct{}{}
		}
		require.Len(t, seen, 8, c.Name())
	}
}

func TestNewPrivateKey_Resamples(t *testing.T) {
	valid := bytes.Repeat([]byte{0x42}, 32)
	var stream []byte
	stream = append(stream, bytes.Repeat([]byte{0xff}, 32)...) // above n
	stream = append(stream, make([]byte, 32)...)               // zero
	stream = append(stream, valid...)

	c, err := NewCurveWithConfig("secp256k1", Config{
		Rand:   bytes.NewReader(stream),
		Logger: logging.Discard(),
	})
	require.NoError(t, err)

	k, err := c.NewPrivateKey()
	require.NoError(t, err)
	require.Equal(t, PrivateKey(valid), k)
}

func TestNewPrivateKey_MasksTopBits(t *testing.T) {
	sample := make([]byte, 66)
	sample[0] = 0xff
	sample[65] = 0x01

	c, err := NewCurveWithConfig("secp521r1", Config{
		Rand:   bytes.NewReader(sample),
		Logger: logging.Discard(),
	})
	require.NoError(t, err)

	k, err := c.NewPrivateKey()
	require.NoError(t, err)
	require.Equal(t, byte(0x01), k[0])
	require.Equal(t, byte(0x01), k[65])
}

type constantReader byte

func (r constantReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

func TestNewPrivateKey_EntropyFailure(t *testing.T) {
	c, err := NewCurveWithConfig("prime256v1", Config{
		Rand:   bytes.NewReader(nil),
		Logger: logging.Discard(),
	})
	require.NoError(t, err)
	_, err = c.NewPrivateKey()
	require.ErrorIs(t, err, ErrEntropy)

	// every masked sample is 2^521 - 1, which is never below n
	c, err = NewCurveWithConfig("secp521r1", Config{
		Rand:   constantReader(0xff),
		Logger: logging.Discard(),
	})
	require.NoError(t, err)
	_, err = c.NewPrivateKey()
	require.ErrorIs(t, err, ErrEntropy)
}

func TestPrivateKeyZeroize(t *testing.T) {
	k := PrivateKey{1, 2, 3}
	k.Zeroize()
	require.Equal(t, PrivateKey{0, 0, 0}, k)
}

func TestPublicKeyEncodings(t *testing.T) {
	pub := PublicKey{X: []byte{0x01, 0x02}, Y: []byte{0x03, 0x05}}
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x05}, pub.Bytes())
	require.Equal(t, []byte{0x04, 0x01, 0x02, 0x03, 0x05}, pub.Uncompressed())
	require.Equal(t, []byte{0x03, 0x01, 0x02}, pub.Compressed())

	pub.Y[1] = 0x04
	require.Equal(t, []byte{0x02, 0x01, 0x02}, pub.Compressed())
}
