package handler

import (
	"bytes"
	"log"
	"net/http"

	"github.com/yusufkecer/bmi-analyzer/internal/chart"
)

type ChartHandler struct{}

func NewChartHandler() *ChartHandler {
	return &ChartHandler{}
}

// Format serves the chart in a fixed format.
func (h *ChartHandler) Format(format chart.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, format)
	}
}

// Get serves the chart in the format named by the "format" query parameter.
func (h *ChartHandler) Get(w http.ResponseWriter, r *http.Request) {
	format, err := chart.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.serve(w, format)
}

func (h *ChartHandler) serve(w http.ResponseWriter, format chart.Format) {
	var buf bytes.Buffer
	if err := chart.New().Render(&buf, format); err != nil {
		log.Printf("[chart] %v", err)
		writeError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
