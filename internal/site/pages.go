package site

import (
	"net/http"

	"github.com/ziadkadry99/masterclass/internal/page"
	"github.com/ziadkadry99/masterclass/internal/practice"
)

func (s *Site) handleContentPage(w http.ResponseWriter, r *http.Request) {
	route := page.RouteForPath(r.URL.Path)
	if route == page.RouteUnknown || route == page.RoutePractice {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.RenderContentPage(r.Context(), w, route, r.URL.Query()); err != nil {
		s.logger.Error("page render failed", "route", route.String(), "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// handlePractice shows a program and, on POST, runs the submitted code or
// lists its steps.
func (s *Site) handlePractice(w http.ResponseWriter, r *http.Request) {
	programID := r.URL.Query().Get("program")

	p := page.New(page.RoutePractice)
	ctrl := practice.NewController(p, s.runner, s.logger)
	ctrl.ListPrograms(s.catalog.All(), programID)

	var program *practice.Program
	if programID != "" {
		program, _ = s.catalog.Get(programID)
	}
	ctrl.LoadProgram(program)

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		code := r.PostFormValue("code")
		switch r.PostFormValue("action") {
		case "steps":
			ctrl.ShowSteps(code)
		default:
			ctrl.Run(r.Context(), code)
		}
	}

	action := "/practice/"
	if program != nil {
		action = page.ProgramHref(program.ID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.write(w, s.viewFor(p, action)); err != nil {
		s.logger.Error("page render failed", "route", "practice", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}
