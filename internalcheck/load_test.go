package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

// enginePackages are the packages that handle key material.
var enginePackages = []string{
	"github.com/athanorlabs/go-ecc",
	"github.com/athanorlabs/go-ecc/nist",
	"github.com/athanorlabs/go-ecc/scalar",
	"github.com/athanorlabs/go-ecc/secp256k1",
	"github.com/athanorlabs/go-ecc/weierstrass",
}

func loadEngine(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, enginePackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	return pkgs
}
