package site

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/masterclass/internal/content"
	"github.com/ziadkadry99/masterclass/internal/practice"
	"github.com/ziadkadry99/masterclass/internal/runner"
)

// maxCodeBytes bounds the size of a submitted program.
const maxCodeBytes = 1 << 20

type codeRequest struct {
	Code string `json:"code"`
}

type sectionSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TopicCount  int    `json:"topic_count"`
}

type topicSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (s *Site) document(w http.ResponseWriter, r *http.Request) (*content.Document, bool) {
	doc, err := s.content.Document(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "content unavailable"})
		return nil, false
	}
	return doc, true
}

// loader is implemented by content sources that can report an in-flight
// fetch. *content.Store does.
type loader interface {
	Loaded() bool
	Loading() bool
}

// handleDocument serves the cached document. While the document is still
// being fetched it answers 502 instead of joining the fetch, so a source
// pointing back at this endpoint fails fast rather than waiting on itself.
func (s *Site) handleDocument(w http.ResponseWriter, r *http.Request) {
	if l, ok := s.content.(loader); ok && !l.Loaded() && l.Loading() {
		s.logger.Warn("content requested while loading", "path", r.URL.Path)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "content is loading"})
		return
	}
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Site) handleSections(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	out := make([]sectionSummary, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		out = append(out, sectionSummary{
			ID:          sec.ID,
			Title:       sec.Title,
			Description: sec.Description,
			TopicCount:  len(sec.Topics),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Site) handleTopics(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	sectionID := chi.URLParam(r, "sectionID")
	sec, found := doc.Section(sectionID)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "section not found: " + sectionID})
		return
	}
	out := make([]topicSummary, 0, len(sec.Topics))
	for _, t := range sec.Topics {
		out = append(out, topicSummary{ID: t.ID, Title: t.Title})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Site) handleQuestions(w http.ResponseWriter, r *http.Request) {
	programs := s.catalog.ForTopic(chi.URLParam(r, "topicID"))
	if programs == nil {
		programs = []practice.Program{}
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Site) handleRun(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCode(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if s.runner == nil {
		s.logger.Error("code run requested without a runner configured")
		writeJSON(w, http.StatusOK, map[string]string{"output": runner.ErrorText})
		return
	}
	text := s.runner.Run(r.Context(), req.Code, runner.Discard)
	writeJSON(w, http.StatusOK, map[string]string{"output": text})
}

func (s *Site) handleSteps(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCode(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"steps": runner.Steps(req.Code)})
}

func decodeCode(r *http.Request) (codeRequest, error) {
	var req codeRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCodeBytes+1))
	if err != nil {
		return req, errors.New("reading request body failed")
	}
	if len(body) > maxCodeBytes {
		return req, errors.New("code is too large")
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, errors.New("invalid JSON body")
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
