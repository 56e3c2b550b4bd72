package router_test

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/bmi-analyzer/internal/domain"
	"github.com/yusufkecer/bmi-analyzer/internal/handler"
	"github.com/yusufkecer/bmi-analyzer/internal/router"
	"github.com/yusufkecer/bmi-analyzer/internal/service"
	"github.com/yusufkecer/bmi-analyzer/internal/web"
)

func newRouter(t *testing.T, avatars *service.AvatarService, limit int) *mux.Router {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)
	if avatars == nil {
		avatars = service.NewAvatarService(web.Avatars())
	}
	return router.New(router.Options{
		AllowedOrigins: "*",
		CalcRateLimit:  limit,
		CalcRateWindow: time.Minute,
	}, tmpl, avatars, handler.NewValidator())
}

func do(r http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newRouter(t, nil, 0), http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestCalculateAPI(t *testing.T) {
	r := newRouter(t, nil, 0)

	cases := []struct {
		body     string
		display  string
		category string
		avatar   string
		alert    string
	}{
		{`{"weight_kg":70,"height_m":1.75}`, "22.86", "normal", "normal_weight", "success"},
		{`{"weight_kg":50,"height_m":1.80}`, "15.43", "underweight", "underweight", "warning"},
		{`{"weight_kg":95,"height_m":1.70}`, "32.87", "obesity", "obesity", "error"},
	}
	for _, tc := range cases {
		w := do(r, http.MethodPost, "/api/v1/bmi", "application/json", tc.body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp domain.BMIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tc.display, resp.BMIDisplay)
		assert.Equal(t, tc.alert, string(resp.Alert))
		assert.Equal(t, tc.avatar, string(resp.AvatarKey))
		assert.Equal(t, "/api/v1/avatars/"+tc.avatar, resp.AvatarURL)
		assert.Len(t, resp.Guidance, 4)
		assert.Contains(t, w.Body.String(), `"category":"`+tc.category+`"`)
	}
}

func TestCalculateAPIQuery(t *testing.T) {
	w := do(newRouter(t, nil, 0), http.MethodGet, "/api/v1/bmi?weight_kg=70&height_m=1.75", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bmi_display":"22.86"`)
}

func TestCalculateAPIErrors(t *testing.T) {
	r := newRouter(t, nil, 0)

	w := do(r, http.MethodPost, "/api/v1/bmi", "application/json", `{"weight_kg":70,"height_m":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Height must be greater than zero."}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/v1/bmi", "application/json", `{"weight_kg":0,"height_m":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodPost, "/api/v1/bmi", "application/json", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/bmi", "application/json", `{"weight_kg":70}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "height_m is required")

	w = do(r, http.MethodPost, "/api/v1/bmi", "application/json", `{"weight_kg":250,"height_m":1.75}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "weight_kg must be at most 200")

	w = do(r, http.MethodGet, "/api/v1/bmi?weight_kg=abc&height_m=1.75", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateAPIMissingAvatar(t *testing.T) {
	r := newRouter(t, service.NewAvatarService(fstest.MapFS{}), 0)

	w := do(r, http.MethodPost, "/api/v1/bmi", "application/json", `{"weight_kg":70,"height_m":1.75}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.BMIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "22.86", resp.BMIDisplay)
	assert.Empty(t, resp.AvatarURL)
	assert.Equal(t, "avatar image unavailable", resp.AvatarError)
}

func TestCategories(t *testing.T) {
	w := do(newRouter(t, nil, 0), http.MethodGet, "/api/v1/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cats []domain.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	require.Len(t, cats, 4)
	assert.Equal(t, "Underweight", cats[0].Label)
	assert.Equal(t, "Obesity", cats[3].Label)
	assert.Nil(t, cats[3].UpperBound)
	require.NotNil(t, cats[1].UpperBound)
	assert.Equal(t, 24.9, *cats[1].UpperBound)
}

func TestChart(t *testing.T) {
	r := newRouter(t, nil, 0)

	w := do(r, http.MethodGet, "/chart.png", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	cfg, err := png.DecodeConfig(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Width)
	assert.Equal(t, 600, cfg.Height)

	w = do(r, http.MethodGet, "/api/v1/chart?format=svg", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))

	w = do(r, http.MethodGet, "/api/v1/chart?format=bmp", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvatarEndpoint(t *testing.T) {
	r := newRouter(t, nil, 0)

	w := do(r, http.MethodGet, "/api/v1/avatars/normal_weight", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	cfg, err := png.DecodeConfig(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Width)

	w = do(r, http.MethodGet, "/avatars/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	missing := newRouter(t, service.NewAvatarService(fstest.MapFS{}), 0)
	w = do(missing, http.MethodGet, "/avatars/obesity", "", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPages(t *testing.T) {
	r := newRouter(t, nil, 0)

	w := do(r, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Introduction to BMI")
	assert.Contains(t, w.Body.String(), `src="/chart.png"`)

	w = do(r, http.MethodGet, "/?page=analyzer", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Calculate BMI")
	assert.Contains(t, body, `value="70.0"`)
	assert.Contains(t, body, `value="1.75"`)

	w = do(r, http.MethodGet, "/?page=missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyzerSubmit(t *testing.T) {
	r := newRouter(t, nil, 0)
	form := url.Values{"weight_kg": {"70.0"}, "height_m": {"1.75"}}.Encode()

	w := do(r, http.MethodPost, "/analyzer", "application/x-www-form-urlencoded", form)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Your BMI is 22.86")
	assert.Contains(t, body, `class="alert alert-success"`)
	assert.Contains(t, body, "Suggestions to Maintain Your Health:")
	assert.Contains(t, body, "Stay hydrated and get adequate sleep.")
	assert.Contains(t, body, "data:image/png;base64,")
	assert.Contains(t, body, "Your body shape representation")
}

func TestAnalyzerSubmitZeroHeight(t *testing.T) {
	r := newRouter(t, nil, 0)
	form := url.Values{"weight_kg": {"70.0"}, "height_m": {"0"}}.Encode()

	w := do(r, http.MethodPost, "/analyzer", "application/x-www-form-urlencoded", form)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Height must be greater than zero.")
	assert.NotContains(t, w.Body.String(), "Your BMI is")
}

func TestAnalyzerSubmitMissingAvatar(t *testing.T) {
	r := newRouter(t, service.NewAvatarService(fstest.MapFS{}), 0)
	form := url.Values{"weight_kg": {"95"}, "height_m": {"1.70"}}.Encode()

	w := do(r, http.MethodPost, "/analyzer", "application/x-www-form-urlencoded", form)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Your BMI is 32.87")
	assert.Contains(t, body, "Obesity")
	assert.Contains(t, body, "Avatar image could not be loaded.")
	assert.NotContains(t, body, "data:image/png;base64,")
}

func TestCalculateRateLimited(t *testing.T) {
	r := newRouter(t, nil, 2)
	body := `{"weight_kg":70,"height_m":1.75}`

	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/api/v1/bmi", "application/json", body)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(r, http.MethodPost, "/api/v1/bmi", "application/json", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Reading pages is not limited.
	w = do(r, http.MethodGet, "/api/v1/categories", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
