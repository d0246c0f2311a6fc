package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"price-analyzer/internal/middleware"
	"price-analyzer/internal/prices/model"
	"price-analyzer/internal/prices/service"
	"price-analyzer/internal/report"
)

const maxSuggest = 5

type searchResponse struct {
	Query       string               `json:"query"`
	Count       int                  `json:"count"`
	Results     []model.SearchResult `json:"results"`
	Suggestions []string             `json:"suggestions,omitempty"`
}

// Health — жив ли сервис и сколько позиций загружено.
func Health(ds *model.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "records": ds.Len()})
	}
}

// Search — GET /search?q=фрагмент, тот же поиск, что и в консоли.
func Search(ds *model.Dataset, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With().Str("rid", middleware.GetRequestID(r)).Logger()

		q := r.URL.Query().Get("q")
		res := service.FindByText(ds, q)
		resp := searchResponse{Query: q, Count: len(res), Results: res}
		if len(res) == 0 {
			resp.Suggestions = service.Suggest(ds, q, maxSuggest, service.DefaultSuggestThreshold)
		}
		writeJSON(w, http.StatusOK, resp)

		log.Debug().
			Str("q", q).
			Int("found", len(res)).
			Dur("elapsed", time.Since(start)).
			Msg("search done")
	}
}

// Report — HTML-отчёт по всему датасету.
func Report(ds *model.Dataset, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := report.WriteHTML(&buf, ds); err != nil {
			logger.Error().Str("rid", middleware.GetRequestID(r)).Err(err).Msg("render report")
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(buf.Bytes())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
