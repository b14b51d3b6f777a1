package tests

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuizhongyueming/monads/pkg/chain"
	"github.com/shuizhongyueming/monads/pkg/option"
	"github.com/shuizhongyueming/monads/pkg/result"
)

// divide is the canonical Option scenario: division is a partial function,
// absence models the undefined case.
func divide(numerator, denominator float64) option.Option[float64] {
	if denominator == 0 {
		return option.None[float64]()
	}
	return option.Some(numerator / denominator)
}

func TestDivideScenario(t *testing.T) {
	t.Parallel()

	describe := func(o option.Option[float64]) string {
		return option.Match(o, option.Handlers[float64, string]{
			OnSome: func(r float64) string { return fmt.Sprintf("Result: %v", r) },
			OnNone: func() string { return "Cannot divide by 0" },
		})
	}

	assert.Equal(t, "Cannot divide by 0", describe(divide(2, 0)))
	assert.Equal(t, "Result: 1", describe(divide(2, 2)))
}

func TestOptionFunctorLaws(t *testing.T) {
	t.Parallel()

	// identity
	o := option.Some(9)
	id := option.Map(o, func(v int) int { return v })
	assert.Equal(t, o.Variant(), id.Variant())
	assert.Equal(t, o.Unwrap(), id.Unwrap())
	assert.True(t, option.Map(option.None[int](), func(v int) int { return v }).IsNone())

	// composition
	f := func(v int) int { return v + 1 }
	g := func(v int) int { return v * 2 }
	composed := option.Map(option.Map(option.Some(3), f), g)
	direct := option.Map(option.Some(3), func(v int) int { return g(f(v)) })
	assert.Equal(t, direct.Unwrap(), composed.Unwrap())
}

func TestOptionMonadLaws(t *testing.T) {
	t.Parallel()

	f := func(v int) option.Option[string] { return option.Some(strconv.Itoa(v)) }

	// left identity: Some(v).andThen(f) == f(v)
	bound := option.AndThen(option.Some(5), f)
	assert.Equal(t, f(5).Unwrap(), bound.Unwrap())

	// None absorbs regardless of f
	invoked := false
	absorbed := option.AndThen(option.None[int](), func(v int) option.Option[string] {
		invoked = true
		return f(v)
	})
	assert.True(t, absorbed.IsNone())
	assert.False(t, invoked)

	// right identity: o.andThen(Some) == o
	o := option.Some(5)
	assert.Equal(t, o.Unwrap(), option.AndThen(o, option.Some[int]).Unwrap())
}

func TestOptionExtraction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, option.Map(option.Some(5), func(x int) int { return x + 1 }).Unwrap())
	assert.Equal(t, 0, option.None[int]().UnwrapOr(0))
	assert.PanicsWithValue(t, "Trying to unwrap None.", func() {
		option.None[int]().Unwrap()
	})
}

func TestResultFunctorLaws(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v * 3 }
	assert.Equal(t, f(2), result.Map(result.Ok[int, string](2), f).Unwrap())

	mappedErr := result.Map(result.Err[int, string]("e"), f)
	require.True(t, mappedErr.IsErr())
	assert.Equal(t, "e", mappedErr.UnwrapErr())

	// mapErr dual
	g := func(e string) string { return e + "!" }
	assert.Equal(t, 2, result.MapErr(result.Ok[int, string](2), g).Unwrap())
	assert.Equal(t, g("e"), result.MapErr(result.Err[int, string]("e"), g).UnwrapErr())
}

func TestResultShortCircuits(t *testing.T) {
	t.Parallel()

	andThenInvoked := false
	r := result.AndThen(result.Err[int, string]("e"), func(v int) result.Result[int, string] {
		andThenInvoked = true
		return result.Ok[int, string](v)
	})
	assert.Equal(t, "e", r.UnwrapErr())
	assert.False(t, andThenInvoked)

	orElseInvoked := false
	ok := result.OrElse(result.Ok[int, string](1), func(e string) result.Result[int, string] {
		orElseInvoked = true
		return result.Err[int, string](e)
	})
	assert.Equal(t, 1, ok.Unwrap())
	assert.False(t, orElseInvoked)
}

func TestResultOptionConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, result.Ok[int, string](5).Ok().Unwrap())
	assert.True(t, result.Err[int, string]("e").Ok().IsNone())
	assert.Equal(t, "e", result.Err[int, string]("e").Err().Unwrap())
	assert.True(t, result.Ok[int, string](5).Err().IsNone())
}

func TestResultScenarios(t *testing.T) {
	t.Parallel()

	doubled := result.AndThen(result.Ok[int, string](1), func(x int) result.Result[int, string] {
		if x > 0 {
			return result.Ok[int, string](x * 2)
		}
		return result.Err[int, string]("neg")
	})
	assert.Equal(t, 2, doubled.Unwrap())

	recovered := result.OrElse(result.Err[string, string]("e"), func(e string) result.Result[string, string] {
		return result.Ok[string, string]("recovered:" + e)
	})
	assert.Equal(t, "recovered:e", recovered.Unwrap())

	assert.PanicsWithValue(t, "config must parse: boom", func() {
		result.Err[int, string]("boom").Expect("config must parse")
	})
}

// TestChainPipeline runs a small parse-validate-format pipeline through the
// fluent chain, mirroring how callers stage fallible steps.
func TestChainPipeline(t *testing.T) {
	t.Parallel()

	parse := func(s string) chain.Chain[int, error] {
		return chain.ThenTry(chain.FromValue[string, error](s), strconv.Atoi)
	}

	positive := func(v int) result.Result[int, error] {
		if v <= 0 {
			return result.Err[int, error](fmt.Errorf("not positive: %d", v))
		}
		return result.Ok[int, error](v)
	}

	format := func(c chain.Chain[int, error]) string {
		return chain.Finally(c.Then(positive),
			func(v int) string { return "val:" + strconv.Itoa(v) },
			func(err error) string { return "err" })
	}

	assert.Equal(t, "val:12", format(parse("12")))
	assert.Equal(t, "err", format(parse("bad")))
	assert.Equal(t, "err", format(parse("-3")))
}
