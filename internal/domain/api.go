package domain

type BMIRequest struct {
	WeightKg *float64 `json:"weight_kg" validate:"required,gte=0,lte=200"`
	HeightM  *float64 `json:"height_m" validate:"required,gte=0,lte=2.5"`
}

type BMIResponse struct {
	BMI           float64    `json:"bmi"`
	BMIDisplay    string     `json:"bmi_display"`
	Category      Category   `json:"category"`
	Label         string     `json:"label"`
	Alert         AlertLevel `json:"alert"`
	GuidanceTitle string     `json:"guidance_title"`
	Guidance      []string   `json:"guidance"`
	AvatarKey     AvatarKey  `json:"avatar_key"`
	AvatarURL     string     `json:"avatar_url"`
	AvatarError   string     `json:"avatar_error,omitempty"`
}

type CategoryResponse struct {
	Category      Category   `json:"category"`
	Label         string     `json:"label"`
	LowerBound    float64    `json:"lower_bound"`
	UpperBound    *float64   `json:"upper_bound"`
	Alert         AlertLevel `json:"alert"`
	AvatarKey     AvatarKey  `json:"avatar_key"`
	GuidanceTitle string     `json:"guidance_title"`
	Guidance      []string   `json:"guidance"`
}
