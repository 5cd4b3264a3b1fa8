package executor

import (
	"math/big"

	"go.creack.net/nimbus/lexer"
)

// pi to 100 decimal digits.
const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

func mustRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("invalid rational constant: " + s)
	}
	return r
}

// Named physical constants, resolved to exact closed-form rationals.
var constants = map[lexer.TokenType]*big.Rat{
	lexer.TokPi:       mustRat(piDigits),
	lexer.TokKelvin:   big.NewRat(27315, 100), // Absolute-zero offset (K).
	lexer.TokRD:       big.NewRat(28705, 100), // Gas constant for dry air (J/(kg*K)).
	lexer.TokCP:       big.NewRat(1005, 1),    // Specific heat of air at constant pressure (J/(kg*K)).
	lexer.TokP0:       big.NewRat(101325, 1),  // Standard atmospheric pressure (Pa).
	lexer.TokLV:       big.NewRat(2260000, 1), // Latent heat of vaporization for water (J/kg).
	lexer.TokCW:       big.NewRat(4184, 1),    // Specific heat of water (J/(kg*K)).
	lexer.TokRhoAir:   big.NewRat(1200, 1),    // Density of air (g/m3).
	lexer.TokRhoWater: big.NewRat(1000, 1),    // Density of water (kg/m3).
	lexer.TokG:        big.NewRat(981, 100),   // Acceleration due to gravity (m/s2).
}
