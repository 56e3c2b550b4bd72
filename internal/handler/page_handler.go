package handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/yusufkecer/bmi-analyzer/internal/chart"
	"github.com/yusufkecer/bmi-analyzer/internal/domain"
	"github.com/yusufkecer/bmi-analyzer/internal/service"
)

const (
	PageIntroduction = "introduction"
	PageAnalyzer     = "analyzer"

	defaultWeightKg = 70.0
	defaultHeightM  = 1.75
)

type PageHandler struct {
	tmpl     *template.Template
	validate *validator.Validate
	avatars  *service.AvatarService
}

func NewPageHandler(tmpl *template.Template, validate *validator.Validate, avatars *service.AvatarService) *PageHandler {
	return &PageHandler{tmpl: tmpl, validate: validate, avatars: avatars}
}

type categoryView struct {
	Label string
	Range string
}

type introductionView struct {
	Title       string
	Page        string
	Categories  []categoryView
	Notice      string
	NoticeAlert string
	ChartWidth  int
	ChartHeight int
}

type resultView struct {
	BMI           string
	Label         string
	Alert         string
	GuidanceTitle string
	Guidance      []string
	AvatarSrc     template.URL
	AvatarWidth   int
	AvatarError   string
}

type analyzerView struct {
	Title    string
	Page     string
	WeightKg float64
	HeightM  float64
	Error    string
	Result   *resultView
}

// Index selects the page from the "page" query parameter.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("page") {
	case "", PageIntroduction:
		h.Introduction(w, r)
	case PageAnalyzer:
		h.Analyzer(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *PageHandler) Introduction(w http.ResponseWriter, r *http.Request) {
	view := introductionView{
		Title:       "Introduction to BMI",
		Page:        PageIntroduction,
		Notice:      "BMI is a screening measure. It does not diagnose body fatness or health.",
		NoticeAlert: string(domain.AlertInfo),
		ChartWidth:  chart.Width,
		ChartHeight: chart.Height,
	}
	for _, c := range domain.Categories {
		view.Categories = append(view.Categories, categoryView{Label: c.Label(), Range: rangeText(c)})
	}
	h.render(w, http.StatusOK, "introduction.html", view)
}

func (h *PageHandler) Analyzer(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "analyzer.html", analyzerView{
		Title:    "BMI Analyzer",
		Page:     PageAnalyzer,
		WeightKg: defaultWeightKg,
		HeightM:  defaultHeightM,
	})
}

func (h *PageHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	view := analyzerView{
		Title:    "BMI Analyzer",
		Page:     PageAnalyzer,
		WeightKg: defaultWeightKg,
		HeightM:  defaultHeightM,
	}

	if err := r.ParseForm(); err != nil {
		view.Error = "invalid form submission"
		h.render(w, http.StatusBadRequest, "analyzer.html", view)
		return
	}

	req, err := requestFromValues(r.PostFormValue("weight_kg"), r.PostFormValue("height_m"))
	if err != nil {
		view.Error = err.Error()
		h.render(w, http.StatusBadRequest, "analyzer.html", view)
		return
	}
	if req.WeightKg != nil {
		view.WeightKg = *req.WeightKg
	}
	if req.HeightM != nil {
		view.HeightM = *req.HeightM
	}

	m, err := measurementFrom(h.validate, req)
	if err != nil {
		view.Error = err.Error()
		h.render(w, http.StatusBadRequest, "analyzer.html", view)
		return
	}

	result, err := service.ClassifyMeasurement(m)
	if err != nil {
		view.Error = userMessage(err)
		h.render(w, http.StatusUnprocessableEntity, "analyzer.html", view)
		return
	}

	view.Result = h.resultView(result)
	h.render(w, http.StatusOK, "analyzer.html", view)
}

func (h *PageHandler) resultView(result domain.BMIResult) *resultView {
	rv := &resultView{
		BMI:           result.Display(),
		Label:         result.Category.Label(),
		Alert:         string(result.Category.Alert()),
		GuidanceTitle: result.Category.GuidanceTitle(),
		Guidance:      result.Guidance,
		AvatarWidth:   service.AvatarWidth,
	}

	var buf bytes.Buffer
	if err := h.avatars.Encode(&buf, result.AvatarKey); err != nil {
		log.Printf("[avatar] %v", err)
		rv.AvatarError = "Avatar image could not be loaded."
		return rv
	}
	rv.AvatarSrc = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()))
	return rv
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[http] failed to render %s: %v", name, err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[http] failed to write %s: %v", name, err)
	}
}

func rangeText(c domain.Category) string {
	lower, upper := c.Bounds()
	switch {
	case lower == 0:
		return fmt.Sprintf("BMI < %.1f", upper)
	case upper == 0:
		return fmt.Sprintf("BMI ≥ %.1f", lower)
	}
	return fmt.Sprintf("%.1f ≤ BMI < %.1f", lower, upper)
}
