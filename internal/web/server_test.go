package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/tattoo-stencil-kit/internal/metrics"
	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
	"github.com/shouni/tattoo-stencil-kit/pkg/generator"
)

// --- Mocks ---

type mockGenerator struct {
	calls        int
	lastSpec     domain.DesignSpecification
	generateFunc func(ctx context.Context, spec domain.DesignSpecification) (*domain.GeneratedImage, error)
}

func (m *mockGenerator) GenerateImage(ctx context.Context, spec domain.DesignSpecification) (*domain.GeneratedImage, error) {
	m.calls++
	m.lastSpec = spec
	if m.generateFunc != nil {
		return m.generateFunc(ctx, spec)
	}
	return &domain.GeneratedImage{Data: []byte("foo"), MimeType: "image/png"}, nil
}

func failingWith(err error) *mockGenerator {
	return &mockGenerator{
		generateFunc: func(ctx context.Context, spec domain.DesignSpecification) (*domain.GeneratedImage, error) {
			return nil, err
		},
	}
}

func newTestServer(t *testing.T, gen generator.ImageGenerator) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	s, err := NewServer(gen, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewRecorder(reg), reg)
	require.NoError(t, err)
	return s.Routes()
}

// --- Tests ---

func TestNewServer(t *testing.T) {
	_, err := NewServer(nil, nil, metrics.NewRecorder(prometheus.NewRegistry()), nil)
	assert.Error(t, err)

	_, err = NewServer(&mockGenerator{}, nil, nil, nil)
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	h := newTestServer(t, &mockGenerator{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Phoenix"`, "form must be pre-filled with the example design")
	assert.Contains(t, body, `<option value="Realism" selected>`)
	assert.Contains(t, body, "Your art will appear here")
	assert.NotContains(t, body, "<img")
}

func TestGenerateForm(t *testing.T) {
	t.Run("Success/ShouldRenderImageWithDownloadLinks", func(t *testing.T) {
		gen := &mockGenerator{}
		h := newTestServer(t, gen)

		form := url.Values{"mainElement": {"Dragon"}, "style": {"Old School"}, "focus": {""}}
		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `src="data:image/png;base64,Zm9v"`)
		assert.Contains(t, body, `download="`+domain.DownloadFilename+`"`)
		assert.Contains(t, body, `download="`+domain.SaveFilename+`"`)
		assert.NotContains(t, body, "An error occurred")

		assert.Equal(t, 1, gen.calls)
		assert.Equal(t, domain.DesignSpecification{MainElement: "Dragon", Style: "Old School"}, gen.lastSpec)
	})

	t.Run("Failure/ShouldRenderSanitizedErrorOnly", func(t *testing.T) {
		cause := errors.New("dial tcp: secret-host:443")
		h := newTestServer(t, failingWith(&generator.GenerationError{
			Kind:    generator.KindServiceCallFailed,
			Message: "The call to the image service failed.",
			Err:     cause,
		}))

		req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("mainElement=Rose"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "The call to the image service failed.")
		assert.NotContains(t, body, "secret-host")
		assert.NotContains(t, body, "<img", "an error page must never show an image")
		assert.Contains(t, body, `value="Rose"`, "submitted values must be kept in the form")
	})
}

func TestGenerateJSON(t *testing.T) {
	t.Run("Success/ShouldReturnDataURIAndFilename", func(t *testing.T) {
		gen := &mockGenerator{}
		h := newTestServer(t, gen)

		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"mainElement":"Dragon","style":"Old School"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp generateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "data:image/png;base64,Zm9v", resp.Image)
		assert.Equal(t, domain.DownloadFilename, resp.Filename)
		assert.Equal(t, "Dragon", gen.lastSpec.MainElement)
	})

	t.Run("Failure/ShouldRejectMalformedJSONWithoutGenerating", func(t *testing.T) {
		gen := &mockGenerator{}
		h := newTestServer(t, gen)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"mainElement":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, gen.calls)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"configuration", generator.ErrConfiguration, http.StatusServiceUnavailable, "ConfigurationError"},
		{"service call", generator.ErrServiceCallFailed, http.StatusBadGateway, "ServiceCallFailed"},
		{"empty result", generator.ErrEmptyResult, http.StatusUnprocessableEntity, "EmptyResult"},
		{"busy", generator.ErrBusy, http.StatusTooManyRequests, "Busy"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run("Failure/"+tt.name, func(t *testing.T) {
			h := newTestServer(t, failingWith(tt.err))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantKind, resp.Error.Kind)
			assert.Equal(t, generator.UserMessage(tt.err), resp.Error.Message)
			assert.NotContains(t, rec.Body.String(), `"image"`)
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(t, failingWith(generator.ErrEmptyResult))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`)))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tattoo_generations_total{outcome="EmptyResult"} 1`)
}
