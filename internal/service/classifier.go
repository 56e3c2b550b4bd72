package service

import (
	"math"

	"github.com/yusufkecer/bmi-analyzer/internal/domain"
)

// Classify computes the BMI of a measurement and maps it onto its category,
// guidance and avatar. It fails with domain.ErrInvalidInput when the height is
// not positive, the weight is negative, or either value is not finite.
func Classify(weightKg, heightM float64) (domain.BMIResult, error) {
	if math.IsNaN(heightM) || math.IsInf(heightM, 0) || heightM <= 0 {
		return domain.BMIResult{}, domain.ErrHeightNotPositive
	}
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg < 0 {
		return domain.BMIResult{}, domain.ErrNegativeWeight
	}

	bmi := weightKg / (heightM * heightM)
	category := domain.CategoryFor(bmi)

	return domain.BMIResult{
		Measurement: domain.Measurement{WeightKg: weightKg, HeightM: heightM},
		Value:       bmi,
		Category:    category,
		Guidance:    category.Guidance(),
		AvatarKey:   domain.AvatarFor(category),
	}, nil
}

// ClassifyMeasurement is Classify for an already assembled measurement.
func ClassifyMeasurement(m domain.Measurement) (domain.BMIResult, error) {
	return Classify(m.WeightKg, m.HeightM)
}
