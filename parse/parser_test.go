package parse_test

import (
	"testing"

	"github.com/solvent-go/solvent/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_ParsesPrefix verifies that Run applies the parser to a prefix and
// discards the unconsumed remainder.
func TestRun_ParsesPrefix(t *testing.T) {
	got, err := parse.Run(parse.Literal("ab"), "abcdef")
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}

// TestAnyRune_ConsumesOneRune verifies single-rune consumption, including
// multi-byte runes, and failure at end of input.
func TestAnyRune_ConsumesOneRune(t *testing.T) {
	r, err := parse.Run(parse.AnyRune(), "éx")
	require.NoError(t, err)
	assert.Equal(t, 'é', r)

	_, err = parse.Run(parse.AnyRune(), "")
	assert.ErrorIs(t, err, parse.ErrParse, "empty input must fail")
}

// TestRune_MatchesExactRune verifies the exact-rune primitive and its
// positioned failure.
func TestRune_MatchesExactRune(t *testing.T) {
	r, err := parse.Run(parse.Rune('a'), "ab")
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	_, err = parse.Run(parse.Rune('a'), "xy")
	require.ErrorIs(t, err, parse.ErrParse)
	var pe *parse.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.Off, "failure position is the unmatched rune")
	assert.Equal(t, "'a'", pe.Expected)
}

// TestLiteral_FailurePosition verifies that a literal mismatch reports the
// offset where the literal was attempted.
func TestLiteral_FailurePosition(t *testing.T) {
	_, err := parse.Run(parse.Map2(parse.Literal("ab"), parse.Literal("cd"),
		func(a, b string) string { return a + b }), "abXd")
	var pe *parse.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Off, "second literal fails after the first consumed two bytes")
	assert.Equal(t, `"cd"`, pe.Expected)
}

// TestDigits_RequiresAtLeastOneDigit verifies the digit-run primitive.
func TestDigits_RequiresAtLeastOneDigit(t *testing.T) {
	got, err := parse.Run(parse.Digits(), "0451x")
	require.NoError(t, err)
	assert.Equal(t, "0451", got)

	_, err = parse.Run(parse.Digits(), "x451")
	assert.ErrorIs(t, err, parse.ErrParse)
}

// TestUint_ParsesAndWidens verifies unsigned parsing into several target
// types, with out-of-range values failing rather than wrapping.
func TestUint_ParsesAndWidens(t *testing.T) {
	small, err := parse.Run(parse.Uint[uint8](), "43")
	require.NoError(t, err)
	assert.Equal(t, uint8(43), small)

	wide, err := parse.Run(parse.Uint[uint64](), "26984457539")
	require.NoError(t, err)
	assert.Equal(t, uint64(26984457539), wide)

	_, err = parse.Run(parse.Uint[uint8](), "300")
	assert.ErrorIs(t, err, parse.ErrParse, "256+ must not fit uint8")

	_, err = parse.Run(parse.Uint[uint16](), "-3")
	assert.ErrorIs(t, err, parse.ErrParse, "a sign is not part of an unsigned number")
}

// TestInt_ParsesOptionalSign verifies signed parsing with '-', '+', and no
// sign, plus the range check.
func TestInt_ParsesOptionalSign(t *testing.T) {
	cases := []struct {
		in   string
		want int32
	}{
		{"-45", -45},
		{"+7", 7},
		{"907", 907},
	}
	for _, tc := range cases {
		got, err := parse.Run(parse.Int[int32](), tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parse.Run(parse.Int[int8](), "-200")
	assert.ErrorIs(t, err, parse.ErrParse, "-200 must not fit int8")
}

// TestDecimal_ParsesFractions verifies decimal parsing with and without a
// fractional part.
func TestDecimal_ParsesFractions(t *testing.T) {
	got, err := parse.Run(parse.Decimal[float64](), "-12.25")
	require.NoError(t, err)
	assert.Equal(t, -12.25, got)

	whole, err := parse.Run(parse.Decimal[float64](), "3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, whole)

	_, err = parse.Run(parse.Decimal[float64](), ".5")
	assert.ErrorIs(t, err, parse.ErrParse, "a leading whole part is required")
}

// TestSpaces_NewlinePolicy verifies that newlines count as whitespace only
// on request.
func TestSpaces_NewlinePolicy(t *testing.T) {
	got, err := parse.Run(parse.Trim(parse.Int[int32](), false), "   -45   ")
	require.NoError(t, err)
	assert.Equal(t, int32(-45), got)

	_, err = parse.Run(parse.Trim(parse.Int[int32](), false), "\n67\n")
	assert.ErrorIs(t, err, parse.ErrParse, "newlines stay untrimmed without the flag")

	got, err = parse.Run(parse.Trim(parse.Int[int32](), true), "\n67\n")
	require.NoError(t, err)
	assert.Equal(t, int32(67), got)
}

// TestAll_RequiresFullConsumption verifies the EOF requirement and its
// failure offset.
func TestAll_RequiresFullConsumption(t *testing.T) {
	got, err := parse.Run(parse.All(parse.Digits()), "12")
	require.NoError(t, err)
	assert.Equal(t, "12", got)

	_, err = parse.Run(parse.All(parse.Digits()), "12a")
	var pe *parse.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Off)
	assert.Equal(t, "end of input", pe.Expected)
}
