package domain

import "fmt"

type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
	Obesity
)

// Categories lists every category in ascending BMI order.
var Categories = []Category{Underweight, Normal, Overweight, Obesity}

// Category thresholds on the BMI axis. ObesityChartCeiling is only the upper
// level of the chart; the Obesity category itself is unbounded.
const (
	UnderweightUpper    = 18.5
	NormalUpper         = 24.9
	OverweightLower     = 25.0
	OverweightUpper     = 29.9
	ObesityChartCeiling = 40.0
)

type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertSuccess AlertLevel = "success"
	AlertWarning AlertLevel = "warning"
	AlertError   AlertLevel = "error"
)

type AvatarKey string

const (
	AvatarUnderweight AvatarKey = "underweight"
	AvatarNormal      AvatarKey = "normal_weight"
	AvatarOverweight  AvatarKey = "overweight"
	AvatarObesity     AvatarKey = "obesity"
)

type Measurement struct {
	WeightKg float64 `json:"weight_kg"`
	HeightM  float64 `json:"height_m"`
}

type BMIResult struct {
	Measurement Measurement
	Value       float64
	Category    Category
	Guidance    []string
	AvatarKey   AvatarKey
}

// Display rounds the value to two decimals. Classification never uses it.
func (r BMIResult) Display() string {
	return FormatBMI(r.Value)
}

func FormatBMI(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

type categoryInfo struct {
	name          string
	label         string
	alert         AlertLevel
	avatar        AvatarKey
	guidanceTitle string
	guidance      []string
	lower, upper  float64
}

const (
	improveTitle  = "Suggestions to Improve Your Health:"
	maintainTitle = "Suggestions to Maintain Your Health:"
)

var categoryTable = map[Category]categoryInfo{
	Underweight: {
		name:          "underweight",
		label:         "Underweight",
		alert:         AlertWarning,
		avatar:        AvatarUnderweight,
		guidanceTitle: improveTitle,
		guidance: []string{
			"Increase your caloric intake with nutrient-rich foods.",
			"Include more protein and healthy fats in your diet.",
			"Consider consulting a healthcare provider or dietitian for personalized advice.",
			"Engage in regular exercise to build muscle mass.",
		},
		lower: 0,
		upper: UnderweightUpper,
	},
	Normal: {
		name:          "normal",
		label:         "Normal weight",
		alert:         AlertSuccess,
		avatar:        AvatarNormal,
		guidanceTitle: maintainTitle,
		guidance: []string{
			"Continue eating a balanced diet with a mix of proteins, carbohydrates, and fats.",
			"Maintain regular physical activity to stay fit.",
			"Monitor your weight regularly to ensure it remains stable.",
			"Stay hydrated and get adequate sleep.",
		},
		lower: UnderweightUpper,
		upper: NormalUpper,
	},
	Overweight: {
		name:          "overweight",
		label:         "Overweight",
		alert:         AlertWarning,
		avatar:        AvatarOverweight,
		guidanceTitle: improveTitle,
		guidance: []string{
			"Aim for a balanced diet with reduced calorie intake.",
			"Increase physical activity and incorporate both cardio and strength training exercises.",
			"Monitor portion sizes and avoid sugary and high-fat foods.",
			"Consider consulting a healthcare provider for personalized weight management strategies.",
		},
		lower: OverweightLower,
		upper: OverweightUpper,
	},
	Obesity: {
		name:          "obesity",
		label:         "Obesity",
		alert:         AlertError,
		avatar:        AvatarObesity,
		guidanceTitle: improveTitle,
		guidance: []string{
			"Seek professional advice from a healthcare provider for a tailored weight loss plan.",
			"Focus on a balanced, calorie-controlled diet.",
			"Increase physical activity and establish a regular exercise routine.",
			"Consider support from a nutritionist or a weight management program.",
		},
		lower: OverweightUpper,
		upper: 0,
	},
}

// CategoryFor maps a BMI value onto a category. The literal boundaries leave
// [24.9, 25) unmatched; such values fall through to Obesity.
func CategoryFor(bmi float64) Category {
	switch {
	case bmi < UnderweightUpper:
		return Underweight
	case bmi >= UnderweightUpper && bmi < NormalUpper:
		return Normal
	case bmi >= OverweightLower && bmi < OverweightUpper:
		return Overweight
	default:
		return Obesity
	}
}

func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

func (c Category) String() string {
	if info, ok := categoryTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) Label() string { return categoryTable[c].label }

func (c Category) Alert() AlertLevel { return categoryTable[c].alert }

func (c Category) GuidanceTitle() string { return categoryTable[c].guidanceTitle }

// Guidance returns a copy of the category's recommendation list.
func (c Category) Guidance() []string {
	g := categoryTable[c].guidance
	out := make([]string, len(g))
	copy(out, g)
	return out
}

// Bounds returns the nominal BMI range of the category. An upper bound of 0
// means the range is open.
func (c Category) Bounds() (lower, upper float64) {
	info := categoryTable[c]
	return info.lower, info.upper
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for _, candidate := range Categories {
		if candidate.String() == string(text) {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", text)
}

func AvatarFor(c Category) AvatarKey {
	return categoryTable[c].avatar
}

// ParseAvatarKey accepts only the four known keys.
func ParseAvatarKey(s string) (AvatarKey, error) {
	for _, c := range Categories {
		if k := AvatarFor(c); string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAvatar, s)
}
