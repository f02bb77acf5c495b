package nit

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndNormalize_ValidExamples(t *testing.T) {
	for _, raw := range []string{"800.197.268-4", "800197268-4", "8001972684", "  800 197 268 4 "} {
		t.Run(raw, func(t *testing.T) {
			base, err := ValidateAndNormalize(raw)
			require.NoError(t, err)
			assert.Equal(t, "800197268", base)
		})
	}
}

func TestValidateAndNormalize_Errors(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"", ErrEmptyInput},
		{"   \t", ErrEmptyInput},
		{"abc", ErrInvalidCharacters},
		{"12-34x", ErrInvalidCharacters},
		{"800/197/268-4", ErrInvalidCharacters},
		{"12345678", ErrInvalidLength},
		{"80019726841", ErrInvalidLength},
		{"123456780", ErrMissingCheckDigit},
		{"111111111", ErrMissingCheckDigit},
		{"800.197.268", ErrMissingCheckDigit},
		{"800197268-5", ErrCheckDigitMismatch},
		{"8001972685", ErrCheckDigitMismatch},
		{"1234567890", ErrCheckDigitMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ValidateAndNormalize(tt.raw)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestComputeCheckDigit(t *testing.T) {
	dv, err := ComputeCheckDigit("800197268")
	require.NoError(t, err)
	assert.Equal(t, 4, dv)

	dv, err = ComputeCheckDigit("123456789")
	require.NoError(t, err)
	assert.Equal(t, 6, dv)

	for _, bad := range []string{"", "12345678", "1234567890", "12345678a"} {
		_, err := ComputeCheckDigit(bad)
		assert.ErrorIs(t, err, ErrInvalidBase, bad)
	}
}

func TestRoundTrip_RandomBases(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		base := Generate(rng)
		require.Len(t, base, BaseLength)
		require.NotEqual(t, byte('0'), base[0])

		dv, err := ComputeCheckDigit(base)
		require.NoError(t, err)
		require.GreaterOrEqual(t, dv, 0)
		require.LessOrEqual(t, dv, 9)

		got, err := ValidateAndNormalize(Format(base, dv, i%2 == 0))
		require.NoError(t, err)
		assert.Equal(t, base, got)

		wrong := (dv + 1 + rng.Intn(9)) % 10
		_, err = ValidateAndNormalize(base + strconv.Itoa(wrong))
		assert.ErrorIs(t, err, ErrCheckDigitMismatch)

		_, err = ValidateAndNormalize(base)
		assert.ErrorIs(t, err, ErrMissingCheckDigit)
	}
}

func TestSplit(t *testing.T) {
	base, dv, err := Split("800.197.268-4")
	require.NoError(t, err)
	assert.Equal(t, "800197268", base)
	assert.Equal(t, 4, dv)

	_, _, err = Split("800197268")
	assert.ErrorIs(t, err, ErrMissingCheckDigit)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)))
	b := Generate(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}
