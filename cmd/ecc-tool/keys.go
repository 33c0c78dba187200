package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	ecc "github.com/athanorlabs/go-ecc"
)

var cmdCurves = &cli.Command{
	Name:  "curves",
	Usage: "lists the supported curve names",
	Action: func(cctx *cli.Context) error {
		for _, name := range ecc.SupportedCurves() {
			fmt.Fprintln(cctx.App.Writer, name)
		}
		return nil
	},
}

var compressedFlag = &cli.BoolFlag{
	Name:  "compressed",
	Usage: "output the compressed public key encoding",
}

var cmdGenerate = &cli.Command{
	Name:   "generate",
	Usage:  "outputs a new private key",
	Action: runGenerate,
}

var cmdPubkey = &cli.Command{
	Name:      "pubkey",
	Usage:     "outputs the public key of a private key",
	ArgsUsage: "<private-key>",
	Flags:     []cli.Flag{compressedFlag},
	Action:    runPubkey,
}

var cmdDerive = &cli.Command{
	Name:      "derive",
	Usage:     "derives a child private key from a seed and an index",
	ArgsUsage: "<seed> <index>",
	Action:    runDerive,
}

func runGenerate(cctx *cli.Context) error {
	curve, err := loadCurve(cctx)
	if err != nil {
		return err
	}
	enc, err := encoding(cctx)
	if err != nil {
		return err
	}
	priv, err := curve.NewPrivateKey()
	if err != nil {
		return err
	}
	defer priv.Zeroize()
	fmt.Fprintln(cctx.App.Writer, enc.encode(priv))
	return nil
}

func formatPublicKey(cctx *cli.Context, enc codec, pub ecc.PublicKey) string {
	if cctx.Bool("compressed") {
		return enc.encode(pub.Compressed())
	}
	return enc.encode(pub.Uncompressed())
}

func parsePrivateKey(curve *ecc.Curve, enc codec, s string) (ecc.PrivateKey, error) {
	b, err := enc.decode(s)
	if err != nil {
		return nil, fmt.Errorf("decoding private key: %w", err)
	}
	return curve.ParsePrivateKey(b)
}

func runPubkey(cctx *cli.Context) error {
	args, err := argsN(cctx, 1, "<private-key>")
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

	pub, err := curve.PrivateToPublic(priv)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, formatPublicKey(cctx, enc, pub))
	return nil
}

func runDerive(cctx *cli.Context) error {
	args, err := argsN(cctx, 2, "<seed> <index>")
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
	seed, err := enc.decode(args[0])
	if err != nil {
		return fmt.Errorf("decoding seed: %w", err)
	}
	index, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[1], err)
	}

	priv, err := curve.DeriveChild(seed, uint32(index))
	if err != nil {
		return err
	}
	defer priv.Zeroize()
	fmt.Fprintln(cctx.App.Writer, enc.encode(priv))
	return nil
}
