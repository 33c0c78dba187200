package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(append([]string{"ecc-tool", "--log-level", "error"}, args...), &out)
	return strings.TrimSpace(out.String()), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runTool(t, args...)
	require.NoError(t, err, strings.Join(args, " "))
	return out
}

func TestCurves(t *testing.T) {
	out := mustRun(t, "curves")
	require.Contains(t, strings.Split(out, "\n"), "secp256k1")
	require.Contains(t, strings.Split(out, "\n"), "secp192k1")
}

func TestSignRecoverVerify(t *testing.T) {
	for _, encoding := range []string{"hex", "base58"} {
		for _, curve := range []string{"secp256k1", "P-256", "secp192k1"} {
			global := []string{"--curve", curve, "--encoding", encoding}
			tool := func(args ...string) string {
				return mustRun(t, append(append([]string{}, global...), args...)...)
			}

			priv := tool("generate")
			pub := tool("pubkey", priv)
			compressed := tool("pubkey", "--compressed", priv)
			require.NotEqual(t, pub, compressed)

			sig := tool("sign", "--message", "--recoverable", priv, "hello")
			require.Equal(t, pub, tool("recover", "--message", "hello", sig))
			require.Equal(t, compressed, tool("recover", "--message", "--compressed", "hello", sig))
			require.Equal(t, "valid", tool("verify", "--message", pub, "hello", sig))
			require.Equal(t, "valid", tool("verify", "--message", compressed, "hello", sig))

			_, err := runTool(t, append(append([]string{}, global...), "verify", "--message", pub, "goodbye", sig)...)
			require.ErrorIs(t, err, errSignatureMismatch)

			der := tool("sign", "--message", "--der", "--low-s", priv, "hello")
			require.Equal(t, "valid", tool("verify", "--message", "--der", pub, "hello", der))
		}
	}
}

func TestECDH(t *testing.T) {
	a := mustRun(t, "generate")
	b := mustRun(t, "generate")
	pubA := mustRun(t, "pubkey", a)
	pubB := mustRun(t, "pubkey", "--compressed", b)

	require.Equal(t, mustRun(t, "ecdh", a, pubB), mustRun(t, "ecdh", b, pubA))
	require.Equal(t,
		mustRun(t, "ecdh", "--info", "session", a, pubB),
		mustRun(t, "ecdh", "--info", "session", b, pubA),
	)
}

func TestDerive(t *testing.T) {
	seed := "676f2d6563632064657269766174696f6e2073656564" // "go-ecc derivation seed"
	require.Equal(t,
		"e3d410447250559e81fcfd05afdf2f1a76f0aeee52eb3d06213bfae2746dc8ac",
		mustRun(t, "derive", seed, "7"),
	)

	_, err := runTool(t, "derive", seed, "4294967296")
	require.Error(t, err)
}

func TestErrors(t *testing.T) {
	_, err := runTool(t, "--curve", "secp160k1", "generate")
	require.Error(t, err)

	_, err = runTool(t, "--encoding", "base64", "generate")
	require.Error(t, err)

	_, err = runTool(t, "pubkey")
	require.Error(t, err)

	_, err = runTool(t, "pubkey", "zz")
	require.Error(t, err)

	_, err = runTool(t, "sign", "--der", "--recoverable", "01", "02")
	require.Error(t, err)
}
