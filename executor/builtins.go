package executor

import (
	"math"
	"math/big"

	"go.creack.net/nimbus/ast"
	"go.creack.net/nimbus/lexer"
)

var (
	rat32         = big.NewRat(32, 1)
	ratFiveNinths = big.NewRat(5, 9)
	ratNineFifths = big.NewRat(9, 5)
	kelvinOffset  = big.NewRat(27315, 100)
)

// evalBuiltin dispatches a fixed-arity builtin invocation. Arity is enforced
// by the parser; arguments have already been evaluated to rationals.
func (e *Executor) evalBuiltin(b ast.BuiltinExpr, args []*big.Rat) (*big.Rat, error) {
	switch b.Builtin {
	case lexer.TokFToC:
		return fToC(args[0]), nil
	case lexer.TokCToF:
		return cToF(args[0]), nil
	case lexer.TokCToK:
		return cToK(args[0]), nil
	case lexer.TokKToC:
		return kToC(args[0]), nil
	case lexer.TokFToK:
		return cToK(fToC(args[0])), nil
	case lexer.TokKToF:
		return cToF(kToC(args[0])), nil
	case lexer.TokDewpoint:
		return dewpoint(args[0], args[1])
	default:
		return nil, evalErrorf("unknown builtin %s", b.Builtin)
	}
}

// fToC computes (F - 32) * 5/9, exactly.
func fToC(f *big.Rat) *big.Rat {
	return new(big.Rat).Mul(new(big.Rat).Sub(f, rat32), ratFiveNinths)
}

// cToF computes C * 9/5 + 32, exactly.
func cToF(c *big.Rat) *big.Rat {
	return new(big.Rat).Add(new(big.Rat).Mul(c, ratNineFifths), rat32)
}

// cToK computes C + 273.15, exactly.
func cToK(c *big.Rat) *big.Rat {
	return new(big.Rat).Add(c, kelvinOffset)
}

// kToC computes K - 273.15, exactly.
func kToC(k *big.Rat) *big.Rat {
	return new(big.Rat).Sub(k, kelvinOffset)
}

// dewpoint applies the Magnus approximation with fixed coefficients
// a=17.27, b=237.7. The natural logarithm forces a float round-trip, the
// only place in the evaluator where precision is lost.
func dewpoint(temp, humidity *big.Rat) (*big.Rat, error) {
	const a, b = 17.27, 237.7

	t, _ := temp.Float64()
	h, _ := humidity.Float64()

	alpha := (a*t)/(b+t) + math.Log(h)
	dew := (b * alpha) / (a - alpha)

	if math.IsInf(dew, 0) || math.IsNaN(dew) {
		return nil, evalErrorf("dewpoint undefined for temperature %s, humidity %s",
			FormatRat(temp), FormatRat(humidity))
	}
	return new(big.Rat).SetFloat64(dew), nil
}
