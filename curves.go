package ecc

import (
	"context"
	"fmt"
	"sort"

	"github.com/athanorlabs/go-ecc/nist"
	"github.com/athanorlabs/go-ecc/secp256k1"
	"github.com/athanorlabs/go-ecc/types"
	"github.com/athanorlabs/go-ecc/weierstrass"
)

type curveEntry struct {
	backend func() types.Backend
	// constantTime is nil when no constant-time provider exists.
	constantTime func() types.Backend
}

var registry = map[string]curveEntry{
	"secp192k1": {
		backend: func() types.Backend { return weierstrass.New(weierstrass.Secp192k1()) },
	},
	"prime192v1": {
		backend: func() types.Backend { return weierstrass.New(weierstrass.Prime192v1()) },
	},
	"secp224r1": {
		backend: func() types.Backend { return nist.P224() },
	},
	"secp256k1": {
		backend:      secp256k1.NewCurve,
		constantTime: secp256k1.NewConstantTimeCurve,
	},
	"prime256v1": {
		backend: func() types.Backend { return nist.P256() },
	},
	"secp384r1": {
		backend: func() types.Backend { return nist.P384() },
	},
	"secp521r1": {
		backend: func() types.Backend { return nist.P521() },
	},
}

var aliases = map[string]string{
	"secp192r1": "prime192v1",
	"P-192":     "prime192v1",
	"P-224":     "secp224r1",
	"secp256r1": "prime256v1",
	"P-256":     "prime256v1",
	"P-384":     "secp384r1",
	"P-521":     "secp521r1",
}

// Known SEC 2 curves without a provider.
var unsupported = map[string]struct{}{
	"secp112r1": {},
	"secp112r2": {},
	"secp128r1": {},
	"secp128r2": {},
	"secp160k1": {},
	"secp160r1": {},
	"secp160r2": {},
	"secp224k1": {},
}

// SupportedCurves returns the canonical names of all registered curves.
func SupportedCurves() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CanonicalName resolves aliases such as "P-256" to the registry name.
func CanonicalName(name string) (string, error) {
	if canonical, ok := aliases[name]; ok {
		return canonical, nil
	}
	if _, ok := registry[name]; ok {
		return name, nil
	}
	if _, ok := unsupported[name]; ok {
		return "", newError(ErrUnsupportedCurve,
			fmt.Sprintf("curve %q has no arithmetic provider", name))
	}
	return "", newError(ErrUnsupportedCurve, fmt.Sprintf("unknown curve %q", name))
}

// NewCurve returns the context for a named curve with the default Config.
func NewCurve(name string) (*Curve, error) {
	return NewCurveWithConfig(name, Config{})
}

// NewCurveWithConfig returns the context for a named curve.
func NewCurveWithConfig(name string, cfg Config) (*Curve, error) {
	canonical, err := CanonicalName(name)
	if err != nil {
		return nil, err
	}
	entry := registry[canonical]

	cfg = cfg.withDefaults()
	newBackend := entry.backend
	if cfg.ConstantTime {
		if entry.constantTime != nil {
			newBackend = entry.constantTime
		} else {
			cfg.Logger.Debug(context.Background(), "no constant-time provider, using default",
				"curve", canonical)
		}
	}
	return newCurve(canonical, newBackend(), cfg), nil
}
