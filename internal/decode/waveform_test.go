package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumetric/lockbox-go/internal/errors"
)

func TestWaveform_Interleaved(t *testing.T) {
	text := "1\t10\t2\t20\t3\t30"

	ch1, err := Waveform(text, 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, ch1)

	ch2, err := Waveform(text, 2, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, ch2)
}

func TestWaveform_ScientificNotation(t *testing.T) {
	text := "1.25e-03\t-4.0e+01\t2.50e-03\t-3.9e+01"

	ch1, err := Waveform(text, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.25e-3, 2.5e-3}, ch1)

	ch2, err := Waveform(text, 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-40, -39}, ch2)
}

func TestWaveform_ZeroPadding(t *testing.T) {
	got, err := Waveform("1\t10", 1, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, got)
}

func TestWaveform_Truncation(t *testing.T) {
	got, err := Waveform("1\t10\t2\t20\t3\t30", 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)
}

// Stray non-numeric tokens are dropped without disturbing the interleave of
// the values around them.
func TestWaveform_SkipsStrayTokens(t *testing.T) {
	got, err := Waveform("1\tnoise\t10\t2\t20", 2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, got)
}

func TestWaveform_EmptyInput(t *testing.T) {
	got, err := Waveform("", 1, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, got)
}

func TestWaveform_NoNumericTokens(t *testing.T) {
	got, err := Waveform("CH1_ERROR_SIGNAL", 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, got)
}

func TestWaveform_ChannelOutOfRange(t *testing.T) {
	_, err := Waveform("1\t2", 0, 4, 2)
	require.ErrorIs(t, err, errors.ErrInvalidChannel)

	_, err = Waveform("1\t2", 3, 4, 2)
	require.ErrorIs(t, err, errors.ErrInvalidChannel)
}

func TestWaveform_ZeroLength(t *testing.T) {
	got, err := Waveform("1\t10\t2\t20", 1, 0, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHasNumericPayload(t *testing.T) {
	assert.True(t, HasNumericPayload("1.0\t2.0"))
	assert.True(t, HasNumericPayload("noise\t3.5e-2"))
	assert.False(t, HasNumericPayload(""))
	assert.False(t, HasNumericPayload("CH1_ERROR_SIGNAL"))
	assert.False(t, HasNumericPayload("a\tb\tc"))
}
