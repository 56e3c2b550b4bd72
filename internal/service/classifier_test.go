package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/bmi-analyzer/internal/domain"
)

func TestClassifyScenarios(t *testing.T) {
	cases := []struct {
		name     string
		weight   float64
		height   float64
		display  string
		category domain.Category
		avatar   domain.AvatarKey
	}{
		{"normal", 70.0, 1.75, "22.86", domain.Normal, domain.AvatarNormal},
		{"underweight", 50.0, 1.80, "15.43", domain.Underweight, domain.AvatarUnderweight},
		{"obesity", 95.0, 1.70, "32.87", domain.Obesity, domain.AvatarObesity},
		{"overweight", 80.0, 1.75, "26.12", domain.Overweight, domain.AvatarOverweight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Classify(tc.weight, tc.height)
			require.NoError(t, err)
			assert.Equal(t, tc.display, res.Display())
			assert.Equal(t, tc.category, res.Category)
			assert.Equal(t, tc.avatar, res.AvatarKey)
			assert.Equal(t, tc.category.Guidance(), res.Guidance)
			assert.Equal(t, domain.Measurement{WeightKg: tc.weight, HeightM: tc.height}, res.Measurement)
		})
	}
}

func TestClassifyNormalGuidance(t *testing.T) {
	res, err := Classify(70.0, 1.75)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Continue eating a balanced diet with a mix of proteins, carbohydrates, and fats.",
		"Maintain regular physical activity to stay fit.",
		"Monitor your weight regularly to ensure it remains stable.",
		"Stay hydrated and get adequate sleep.",
	}, res.Guidance)
}

func TestClassifyValue(t *testing.T) {
	for h := 0.05; h <= 2.5; h += 0.15 {
		for w := 0.0; w <= 200; w += 12.5 {
			res, err := Classify(w, h)
			require.NoError(t, err)
			assert.InDelta(t, w/(h*h), res.Value, 1e-9)
		}
	}
}

func TestClassifyInvalidInput(t *testing.T) {
	for _, h := range []float64{0, -0.01, -1.75, math.NaN(), math.Inf(1)} {
		for _, w := range []float64{0, 70, 200} {
			_, err := Classify(w, h)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "height %v weight %v", h, w)
			assert.ErrorIs(t, err, domain.ErrHeightNotPositive)
		}
	}

	_, err := Classify(-1, 1.75)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrNegativeWeight)

	_, err = Classify(math.NaN(), 1.75)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClassifyIdempotent(t *testing.T) {
	a, err := Classify(72.3, 1.81)
	require.NoError(t, err)
	b, err := Classify(72.3, 1.81)
	require.NoError(t, err)

	assert.Equal(t, math.Float64bits(a.Value), math.Float64bits(b.Value))
	assert.Equal(t, a, b)
}

func TestClassifyGapFallsThroughToObesity(t *testing.T) {
	// 24.95 * 1.0^2
	res, err := Classify(24.95, 1.0)
	require.NoError(t, err)
	assert.Equal(t, domain.Obesity, res.Category)
	assert.Equal(t, domain.AvatarObesity, res.AvatarKey)
}
