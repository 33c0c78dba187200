package main

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	ecc "github.com/athanorlabs/go-ecc"
)

var messageFlag = &cli.BoolFlag{
	Name:  "message",
	Usage: "treat the subject argument as text and sign its SHA-256 digest",
}

var derFlag = &cli.BoolFlag{
	Name:  "der",
	Usage: "use ASN.1 DER signatures instead of r || s",
}

var cmdSign = &cli.Command{
	Name:      "sign",
	Usage:     "signs a digest with a private key",
	ArgsUsage: "<private-key> <subject>",
	Flags: []cli.Flag{
		messageFlag,
		derFlag,
		&cli.BoolFlag{
			Name:  "recoverable",
			Usage: "prefix the signature with a recovery byte",
		},
		&cli.BoolFlag{
			Name:  "compressed",
			Usage: "mark a recoverable signature as paired with a compressed public key",
		},
		&cli.BoolFlag{
			Name:  "low-s",
			Usage: "normalize s to the lower half of the group order",
		},
	},
	Action: runSign,
}

var cmdVerify = &cli.Command{
	Name:      "verify",
	Usage:     "checks a signature against a public key",
	ArgsUsage: "<public-key> <subject> <signature>",
	Flags:     []cli.Flag{messageFlag, derFlag},
	Action:    runVerify,
}

var cmdRecover = &cli.Command{
	Name:      "recover",
	Usage:     "recovers the public key from a recoverable signature",
	ArgsUsage: "<subject> <signature>",
	Flags:     []cli.Flag{messageFlag, compressedFlag},
	Action:    runRecover,
}

var errSignatureMismatch = errors.New("signature does not match")

func parseSubject(cctx *cli.Context, enc codec, s string) ([]byte, error) {
	if cctx.Bool("message") {
		digest := sha256.Sum256([]byte(s))
		return digest[:], nil
	}
	b, err := enc.decode(s)
	if err != nil {
		return nil, fmt.Errorf("decoding subject: %w", err)
	}
	return b, nil
}

func runSign(cctx *cli.Context) error {
	args, err := argsN(cctx, 2, "<private-key> <subject>")
	if err != nil {
		return err
	}
	if cctx.Bool("der") && cctx.Bool("recoverable") {
		return fmt.Errorf("DER signatures cannot carry a recovery byte")
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
	subject, err := parseSubject(cctx, enc, args[1])
	if err != nil {
		return err
	}

	sig, err := curve.Sign(subject, priv, ecc.SignOptions{
		Recoverable: cctx.Bool("recoverable"),
		Compressed:  cctx.Bool("compressed"),
	})
	if err != nil {
		return err
	}
	if cctx.Bool("low-s") {
		if sig, err = curve.NormalizeS(sig); err != nil {
			return err
		}
	}
	if cctx.Bool("der") {
		if sig, err = curve.SignatureToDER(sig); err != nil {
			return err
		}
	}
	fmt.Fprintln(cctx.App.Writer, enc.encode(sig))
	return nil
}

func runVerify(cctx *cli.Context) error {
	args, err := argsN(cctx, 3, "<public-key> <subject> <signature>")
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
	pubBytes, err := enc.decode(args[0])
	if err != nil {
		return fmt.Errorf("decoding public key: %w", err)
	}
	pub, err := curve.ParsePublicKey(pubBytes)
	if err != nil {
		return err
	}
	subject, err := parseSubject(cctx, enc, args[1])
	if err != nil {
		return err
	}
	sig, err := enc.decode(args[2])
	if err != nil {
		return fmt.Errorf("decoding signature: %w", err)
	}
	if cctx.Bool("der") {
		if sig, err = curve.SignatureFromDER(sig); err != nil {
			return err
		}
	}

	var ok bool
	if len(sig) == 1+2*curve.PublicKeyLength() {
		ok, err = curve.VerifyRecoverable(sig, subject, pub)
	} else {
		ok, err = curve.Verify(sig, subject, pub)
	}
	if err != nil {
		return err
	}
	if !ok {
		return errSignatureMismatch
	}
	fmt.Fprintln(cctx.App.Writer, "valid")
	return nil
}

func runRecover(cctx *cli.Context) error {
	args, err := argsN(cctx, 2, "<subject> <signature>")
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
	subject, err := parseSubject(cctx, enc, args[0])
	if err != nil {
		return err
	}
	sig, err := enc.decode(args[1])
	if err != nil {
		return fmt.Errorf("decoding signature: %w", err)
	}

	pub, err := curve.Recover(sig, subject)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, formatPublicKey(cctx, enc, pub))
	return nil
}
