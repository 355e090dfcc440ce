package web

import (
	"encoding/json"
	"net/http"

	"github.com/shouni/tattoo-stencil-kit/pkg/domain"
	"github.com/shouni/tattoo-stencil-kit/pkg/generator"
)

type generateResponse struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleGenerateJSON(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var spec domain.DesignSpecification
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		s.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: errorBody{
			Kind:    "InvalidRequest",
			Message: "The request body must be a JSON design specification.",
		}})
		return
	}

	img, err := s.generate(r, spec)
	if err != nil {
		s.writeJSON(w, r, statusForError(err), errorResponse{Error: errorBody{
			Kind:    string(generator.KindOf(err)),
			Message: generator.UserMessage(err),
		}})
		return
	}

	s.writeJSON(w, r, http.StatusOK, generateResponse{
		Image:    img.DataURI(),
		Filename: domain.DownloadFilename,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to encode response", "error", err)
	}
}

// statusForError はエラー種別を HTTP ステータスに写します。
func statusForError(err error) int {
	switch generator.KindOf(err) {
	case generator.KindConfiguration:
		return http.StatusServiceUnavailable
	case generator.KindServiceCallFailed:
		return http.StatusBadGateway
	case generator.KindEmptyResult:
		return http.StatusUnprocessableEntity
	case generator.KindBusy:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
