package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdECDH = &cli.Command{
	Name:      "ecdh",
	Usage:     "computes a Diffie-Hellman shared secret",
	ArgsUsage: "<private-key> <peer-public-key>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "info",
			Usage: "run the secret through HKDF-SHA256 with this context string",
		},
		&cli.StringFlag{
			Name:  "salt",
			Usage: "HKDF salt (only with --info)",
		},
		&cli.IntFlag{
			Name:  "size",
			Usage: "HKDF output size in bytes",
			Value: 32,
		},
	},
	Action: runECDH,
}

func runECDH(cctx *cli.Context) error {
	args, err := argsN(cctx, 2, "<private-key> <peer-public-key>")
	if err != nil {
		return err
	}
	curve, err := loadCurve(cctx)
	if err != nil {
		return err
	}
	enc, err := encoding(cctx)
	if err != nil {
		return err
	}
	priv, err := parsePrivateKey(curve, enc, args[0])
	if err != nil {
		return err
	}
	defer priv.Zeroize()
	pubBytes, err := enc.decode(args[1])
	if err != nil {
		return fmt.Errorf("decoding public key: %w", err)
	}
	pub, err := curve.ParsePublicKey(pubBytes)
	if err != nil {
		return err
	}

	var secret []byte
	if info := cctx.String("info"); info != "" {
		secret, err = curve.SharedKey(priv, pub, []byte(cctx.String("salt")), []byte(info), cctx.Int("size"))
	} else {
		secret, err = curve.ECDH(priv, pub)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, enc.encode(secret))
	return nil
}
