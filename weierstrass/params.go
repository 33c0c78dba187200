package weierstrass

import (
	"math/big"

	"github.com/athanorlabs/go-ecc/types"
)

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("weierstrass: invalid constant " + s)
	}
	return v
}

// Secp192k1 returns the SEC 2 secp192k1 parameters.
// See http://www.secg.org/sec2-v2.pdf section 2.2.1
func Secp192k1() *types.Params {
	return &types.Params{
		Name:    "secp192k1",
		P:       fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFEE37"),
		N:       fromHex("FFFFFFFFFFFFFFFFFFFFFFFE26F2FC170F69466A74DEFD8D"),
		A:       new(big.Int),
		B:       big.NewInt(3),
		Gx:      fromHex("DB4FF10EC057E9AE26B07D0280B7F4341DA5D1B1EAE06C7D"),
		Gy:      fromHex("9B2F2F6D9C5628A7844163D015BE86344082AA88D95E2F9D"),
		BitSize: 192,
	}
}

// Prime192v1 returns the X9.62 prime192v1 parameters, also known as
// secp192r1 and NIST P-192.
func Prime192v1() *types.Params {
	p := fromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF")
	return &types.Params{
		Name:    "prime192v1",
		P:       p,
		N:       fromHex("FFFFFFFFFFFFFFFFFFFFFFFF99DEF836146BC9B1B4D22831"),
		A:       new(big.Int).Sub(p, big.NewInt(3)),
		B:       fromHex("64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1"),
		Gx:      fromHex("188DA80EB03090F67CBF20EB43A18800F4FF0AFD82FF1012"),
		Gy:      fromHex("07192B95FFC8DA78631011ED6B24CDD573F977A11E794811"),
		BitSize: 192,
	}
}
