package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/app"
	"review_radar/internal/domain"
)

type Handlers struct{ Svc *app.ReviewService }

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/reviews", h.listReviews)
	s.mux.Post("/v1/reviews", h.createReview)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		log.Error().Err(err).Msg("write JSON error response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q, err := app.ParseReviewQuery(params.Get("location"), params.Get("start_date"), params.Get("end_date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out, err := h.Svc.Query(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("review query failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// submission is the write-path payload, form-encoded or JSON with the
// same field names.
type submission struct {
	Location   string `json:"Location"`
	ReviewBody string `json:"ReviewBody"`
}

func decodeSubmission(r *http.Request) (submission, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var sub submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return submission{}, err
		}
		return sub, nil
	}
	if err := r.ParseForm(); err != nil {
		return submission{}, err
	}
	return submission{
		Location:   r.PostForm.Get("Location"),
		ReviewBody: r.PostForm.Get("ReviewBody"),
	}, nil
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMissingField.Error())
		return
	}

	review, err := h.Svc.Create(r.Context(), sub.Location, sub.ReviewBody)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrMissingField), errors.Is(err, domain.ErrInvalidLocation):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		log.Error().Err(err).Msg("review create failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	observability.ReviewsCreated.Inc()
	writeJSON(w, http.StatusCreated, review)
}
