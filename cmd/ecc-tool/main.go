package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/mr-tron/base58"
	"github.com/urfave/cli/v2"

	ecc "github.com/athanorlabs/go-ecc"
	"github.com/athanorlabs/go-ecc/logging"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string, out io.Writer) error {
	app := cli.App{
		Name:      "ecc-tool",
		Usage:     "sign, verify, recover and derive keys on short Weierstrass curves",
		Writer:    out,
		ErrWriter: os.Stderr,
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "curve",
			Aliases: []string{"c"},
			Usage:   "curve name (eg: secp256k1, P-256, secp192k1)",
			Value:   "secp256k1",
			EnvVars: []string{"ECC_CURVE"},
		},
		&cli.StringFlag{
			Name:    "encoding",
			Usage:   "encoding of keys, digests and signatures (hex or base58)",
			Value:   "hex",
			EnvVars: []string{"ECC_ENCODING"},
		},
		&cli.BoolFlag{
			Name:    "constant-time",
			Usage:   "use a constant-time arithmetic provider where one exists",
			EnvVars: []string{"ECC_CONSTANT_TIME"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			EnvVars: []string{"ECC_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Commands = []*cli.Command{
		cmdCurves,
		cmdGenerate,
		cmdPubkey,
		cmdSign,
		cmdVerify,
		cmdRecover,
		cmdECDH,
		cmdDerive,
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
}

func loadCurve(cctx *cli.Context) (*ecc.Curve, error) {
	logger := configLogger(cctx, cctx.App.ErrWriter)
	return ecc.NewCurveWithConfig(cctx.String("curve"), ecc.Config{
		Logger:       logging.New(logger),
		ConstantTime: cctx.Bool("constant-time"),
	})
}

type codec struct {
	name string
}

func encoding(cctx *cli.Context) (codec, error) {
	switch name := strings.ToLower(cctx.String("encoding")); name {
	case "hex", "base58":
		return codec{name: name}, nil
	default:
		return codec{}, fmt.Errorf("unknown encoding: %s", cctx.String("encoding"))
	}
}

func (c codec) encode(b []byte) string {
	if c.name == "base58" {
		return base58.Encode(b)
	}
	return hex.EncodeToString(b)
}

func (c codec) decode(s string) ([]byte, error) {
	if c.name == "base58" {
		return base58.Decode(s)
	}
	return hex.DecodeString(s)
}

// argsN returns exactly n positional arguments.
func argsN(cctx *cli.Context, n int, usage string) ([]string, error) {
	if cctx.Args().Len() != n {
		return nil, fmt.Errorf("expected %d arguments: %s", n, usage)
	}
	return cctx.Args().Slice(), nil
}
