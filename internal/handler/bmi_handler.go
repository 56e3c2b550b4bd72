package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/yusufkecer/bmi-analyzer/internal/domain"
	"github.com/yusufkecer/bmi-analyzer/internal/service"
)

const avatarURLPrefix = "/api/v1/avatars/"

type BMIHandler struct {
	validate *validator.Validate
	avatars  *service.AvatarService
}

func NewBMIHandler(validate *validator.Validate, avatars *service.AvatarService) *BMIHandler {
	return &BMIHandler{validate: validate, avatars: avatars}
}

func (h *BMIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.BMIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.respond(w, req)
}

func (h *BMIHandler) CalculateQuery(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromValues(r.URL.Query().Get("weight_kg"), r.URL.Query().Get("height_m"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respond(w, req)
}

func (h *BMIHandler) respond(w http.ResponseWriter, req domain.BMIRequest) {
	m, err := measurementFrom(h.validate, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := service.ClassifyMeasurement(m)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, http.StatusUnprocessableEntity, userMessage(err))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to calculate bmi")
		return
	}

	resp := newBMIResponse(result)
	// The classification stands even when the avatar cannot be served.
	if _, err := h.avatars.Path(result.AvatarKey); err != nil {
		log.Printf("[avatar] %v", err)
		resp.AvatarURL = ""
		resp.AvatarError = "avatar image unavailable"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BMIHandler) Categories(w http.ResponseWriter, r *http.Request) {
	out := make([]domain.CategoryResponse, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		lower, upper := c.Bounds()
		cr := domain.CategoryResponse{
			Category:      c,
			Label:         c.Label(),
			LowerBound:    lower,
			Alert:         c.Alert(),
			AvatarKey:     domain.AvatarFor(c),
			GuidanceTitle: c.GuidanceTitle(),
			Guidance:      c.Guidance(),
		}
		if upper > 0 {
			cr.UpperBound = &upper
		}
		out = append(out, cr)
	}
	writeJSON(w, http.StatusOK, out)
}

func newBMIResponse(r domain.BMIResult) domain.BMIResponse {
	return domain.BMIResponse{
		BMI:           r.Value,
		BMIDisplay:    r.Display(),
		Category:      r.Category,
		Label:         r.Category.Label(),
		Alert:         r.Category.Alert(),
		GuidanceTitle: r.Category.GuidanceTitle(),
		Guidance:      r.Guidance,
		AvatarKey:     r.AvatarKey,
		AvatarURL:     avatarURLPrefix + string(r.AvatarKey),
	}
}

// requestFromValues parses form or query values. Missing values stay nil so
// validation can report them.
func requestFromValues(weight, height string) (domain.BMIRequest, error) {
	var req domain.BMIRequest
	if weight != "" {
		v, err := strconv.ParseFloat(weight, 64)
		if err != nil {
			return req, errors.New("weight_kg must be a number")
		}
		req.WeightKg = &v
	}
	if height != "" {
		v, err := strconv.ParseFloat(height, 64)
		if err != nil {
			return req, errors.New("height_m must be a number")
		}
		req.HeightM = &v
	}
	return req, nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrHeightNotPositive):
		return "Height must be greater than zero."
	case errors.Is(err, domain.ErrNegativeWeight):
		return "Weight must not be negative."
	}
	return "Invalid input."
}
