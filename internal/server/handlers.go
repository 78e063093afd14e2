package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"codeberg.org/snonux/shabdsetu/internal/language"
	"codeberg.org/snonux/shabdsetu/internal/translator"
)

// translateRequest is the POST /translate and POST /smart/query body.
type translateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// translateResponse mirrors translator.Result on the wire.
type translateResponse struct {
	OriginalText      string `json:"original_text"`
	TranslatedText    string `json:"translated_text"`
	SourceLanguage    string `json:"source_language"`
	TargetLanguage    string `json:"target_language"`
	TranslationMethod string `json:"translation_method"`
}

// healthQueryRequest is the POST /health/query body.
type healthQueryRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.serviceBanner())
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.svc.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		if errors.Is(err, translator.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("server: translate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "translation failed")
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		OriginalText:      req.Text,
		TranslatedText:    result.TranslatedText,
		SourceLanguage:    string(result.SourceLanguage),
		TargetLanguage:    string(result.TargetLanguage),
		TranslationMethod: result.Method,
	})
}

// handleHealth reports liveness plus a dictionary self-test in both
// directions, so a monitoring probe notices a broken lookup path and not
// just a dead process.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dict := s.svc.Dictionary()

	enToMr := "failed"
	if out, ok := dict.Lookup("hello", language.English, language.Marathi); ok && out != "" {
		enToMr = "ok"
	}
	mrToEn := "failed"
	if out, ok := dict.Lookup("नमस्कार", language.Marathi, language.English); ok && out != "" {
		mrToEn = "ok"
	}

	status := "healthy"
	if enToMr != "ok" || mrToEn != "ok" {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"dictionary_test": map[string]string{
			"english_to_marathi": enToMr,
			"marathi_to_english": mrToEn,
		},
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := map[string]any{
		"api_calls_made":  s.svc.APICallCount(),
		"cache_size":      s.svc.CacheSize(),
		"cache_entries":   s.svc.CacheKeys(10),
		"history_enabled": s.svc.History() != nil,
	}
	if hist := s.svc.History(); hist != nil {
		count, err := hist.Count()
		if err != nil {
			log.Printf("server: failed to count history: %v", err)
		} else {
			stats["history_count"] = count
		}
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	removed := s.svc.ClearCache()
	writeJSON(w, http.StatusOK, map[string]any{
		"message":         "Cache cleared successfully",
		"entries_removed": removed,
	})
}

func (s *Server) handleHealthQuery(w http.ResponseWriter, r *http.Request) {
	var req healthQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text cannot be empty")
		return
	}

	lang := language.Coerce(req.Language)
	if req.Language == "" || req.Language == string(language.Auto) {
		lang = language.Detect(req.Text)
	}

	answer := s.tutor.Process(r.Context(), req.Text, lang)
	writeJSON(w, http.StatusOK, answer)
}

// handleSmartQuery routes health questions to the tutor and everything else
// through the translation pipeline.
func (s *Server) handleSmartQuery(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text cannot be empty")
		return
	}

	if s.tutor.IsHealthQuery(req.Text) {
		lang := language.Detect(req.Text)
		answer := s.tutor.Process(r.Context(), req.Text, lang)
		writeJSON(w, http.StatusOK, map[string]any{
			"type":     "health",
			"response": answer.Response,
			"source":   answer.Source,
			"language": answer.Language,
		})
		return
	}

	result, err := s.svc.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"type":               "translation",
		"original_text":      req.Text,
		"translated_text":    result.TranslatedText,
		"source_language":    result.SourceLanguage,
		"target_language":    result.TargetLanguage,
		"translation_method": result.Method,
	})
}
