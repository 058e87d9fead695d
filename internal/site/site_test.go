package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/masterclass/internal/content"
	"github.com/ziadkadry99/masterclass/internal/page"
	"github.com/ziadkadry99/masterclass/internal/practice"
	"github.com/ziadkadry99/masterclass/internal/runner"
)

const testDoc = `{
  "sections": [
    {"id": "basics", "title": "Java Basics", "description": "Start here", "topics": [
      {"id": "vars", "title": "Variables", "explanation": "Named storage.", "syntax": "int x;",
       "example": "int x = 5;", "logic": "Declare then assign.", "exercises": ["Declare <b>two</b> ints"]}
    ]},
    {"id": "empty", "title": "Empty Section", "topics": []}
  ]
}`

type staticSource struct {
	doc *content.Document
	err error
}

func (s *staticSource) Document(ctx context.Context) (*content.Document, error) {
	return s.doc, s.err
}

type fakeRunner struct {
	output string
	codes  []string
}

func (f *fakeRunner) Run(ctx context.Context, source string, out runner.Display) string {
	f.codes = append(f.codes, source)
	out.Show(runner.RunningText)
	out.Show(f.output)
	return f.output
}

func setupTest(t *testing.T, run practice.Runner) *Site {
	t.Helper()

	doc, err := content.Parse([]byte(testDoc), true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	src := &staticSource{doc: doc}

	catalog, err := practice.NewCatalog([]practice.Program{
		{ID: "sum", Topic: "vars", Title: "Sum Two Numbers", Statement: "Add a and b.", Input: "1 2", Output: "3", Starter: "class Main {}"},
		{ID: "hello", Title: "Hello"},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	s, err := New(Deps{
		Renderer: page.NewRenderer(src),
		Content:  src,
		Catalog:  catalog,
		Runner:   run,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func setupRouter(s *Site) chi.Router {
	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHomePageListsSections(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	w := get(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Java Basics", "Start here", "Empty Section", `/section/?id=basics`, "window.location.replace"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	if strings.Index(body, "Java Basics") > strings.Index(body, "Empty Section") {
		t.Error("sections are not in document order")
	}
}

func TestSectionPagePlaceholder(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	body := get(t, r, "/section/?id=empty").Body.String()
	if !strings.Contains(body, "Empty Section") {
		t.Error("section title not rendered")
	}
	if !strings.Contains(body, page.NoTopicsText) {
		t.Error("empty section should show the no-topics placeholder")
	}
}

func TestTopicPage(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	body := get(t, r, "/topic/?section=basics&topic=vars").Body.String()
	for _, want := range []string{"Variables", "Named storage.", "int x = 5;", "Declare then assign.", "Declare <b>two</b> ints", `class="active"`} {
		if !strings.Contains(body, want) {
			t.Errorf("topic page missing %q", want)
		}
	}
}

func TestUnknownTopicRendersEmptyPage(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	w := get(t, r, "/topic/?section=basics&topic=nope")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "Named storage.") {
		t.Error("unknown topic should not render content")
	}
}

func TestPracticePageLoadsProgram(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	body := get(t, r, "/practice/?program=sum").Body.String()
	for _, want := range []string{"Sum Two Numbers", "Add a and b.", "class Main {}", `action="/practice/?program=sum"`} {
		if !strings.Contains(body, want) {
			t.Errorf("practice page missing %q", want)
		}
	}
	if !strings.Contains(body, `id="logic-box" class="panel" hidden`) {
		t.Error("logic box should start hidden")
	}
}

func TestPracticePostRunsCode(t *testing.T) {
	fr := &fakeRunner{output: "Hello, World!"}
	r := setupRouter(setupTest(t, fr))

	form := url.Values{"code": {"System.out.println(1);"}, "action": {"run"}}
	req := httptest.NewRequest(http.MethodPost, "/practice/?program=hello", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), "Hello, World!") {
		t.Error("run output not rendered")
	}
	if diff := cmp.Diff([]string{"System.out.println(1);"}, fr.codes); diff != "" {
		t.Errorf("submitted code mismatch (-want +got):\n%s", diff)
	}
}

func TestPracticePostSteps(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	form := url.Values{"code": {"a\nb"}, "action": {"steps"}}
	req := httptest.NewRequest(http.MethodPost, "/practice/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.Contains(body, "Step 1: a") || !strings.Contains(body, "Step 2: b") {
		t.Error("steps not rendered")
	}
}

func TestSectionsAPI(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	w := get(t, r, "/api/sections/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []sectionSummary
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []sectionSummary{
		{ID: "basics", Title: "Java Basics", Description: "Start here", TopicCount: 1},
		{ID: "empty", Title: "Empty Section"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestTopicsAPI(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	w := get(t, r, "/api/topics/basics/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []topicSummary
	json.NewDecoder(w.Body).Decode(&got)
	if diff := cmp.Diff([]topicSummary{{ID: "vars", Title: "Variables"}}, got); diff != "" {
		t.Errorf("topics mismatch (-want +got):\n%s", diff)
	}

	if w := get(t, r, "/api/topics/missing/"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown section, got %d", w.Code)
	}
}

func TestQuestionsAPI(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	var got []practice.Program
	json.NewDecoder(get(t, r, "/api/questions/vars/").Body).Decode(&got)
	if len(got) != 1 || got[0].ID != "sum" {
		t.Errorf("expected program sum for topic vars, got %+v", got)
	}

	body := strings.TrimSpace(get(t, r, "/api/questions/none/").Body.String())
	if body != "[]" {
		t.Errorf("expected empty list, got %s", body)
	}
}

func TestDocumentUnavailable(t *testing.T) {
	src := &staticSource{err: errors.New("boom")}
	s, err := New(Deps{Renderer: page.NewRenderer(src), Content: src})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := setupRouter(s)

	for _, path := range []string{"/static/data.json", "/api/sections/"} {
		if w := get(t, r, path); w.Code != http.StatusBadGateway {
			t.Errorf("%s: expected 502, got %d", path, w.Code)
		}
	}
	if w := get(t, r, "/"); w.Code != http.StatusOK {
		t.Errorf("home page should still render, got %d", w.Code)
	}
}

func TestRunAPI(t *testing.T) {
	fr := &fakeRunner{output: "42"}
	r := setupRouter(setupTest(t, fr))

	req := httptest.NewRequest(http.MethodPost, "/api/run-java/", strings.NewReader(`{"code":"x"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got map[string]string
	json.NewDecoder(w.Body).Decode(&got)
	if got["output"] != "42" {
		t.Errorf("expected output 42, got %q", got["output"])
	}
}

func TestRunAPIBadBody(t *testing.T) {
	r := setupRouter(setupTest(t, &fakeRunner{}))

	req := httptest.NewRequest(http.MethodPost, "/api/run-java/", strings.NewReader(`not json`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestStepsAPI(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/steps/", strings.NewReader(`{"code":"a\nb\n"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got map[string][]string
	json.NewDecoder(w.Body).Decode(&got)
	want := []string{"Step 1: a", "Step 2: b", "Step 3: "}
	if diff := cmp.Diff(want, got["steps"]); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticAssets(t *testing.T) {
	r := setupRouter(setupTest(t, nil))

	cases := map[string]string{
		"/static/style.css": "text/css",
		"/static/script.js": "application/javascript",
		"/static/data.json": "application/json",
	}
	for path, ct := range cases {
		w := get(t, r, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, ct) {
			t.Errorf("%s: content type = %q", path, got)
		}
	}
}

func dialRun(t *testing.T, s *Site) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(setupRouter(s))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/run"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketRun(t *testing.T) {
	conn := dialRun(t, setupTest(t, &fakeRunner{output: "done"}))

	if err := conn.WriteJSON(wsRequest{Type: "run", Code: "x"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var status, output wsResponse
	if err := conn.ReadJSON(&status); err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := conn.ReadJSON(&output); err != nil {
		t.Fatalf("read: %v", err)
	}
	if status.Type != "status" || status.Content != runner.RunningText {
		t.Errorf("first frame = %+v", status)
	}
	if output.Type != "output" || output.Content != "done" {
		t.Errorf("second frame = %+v", output)
	}
}

func TestWebSocketSteps(t *testing.T) {
	conn := dialRun(t, setupTest(t, nil))

	conn.WriteJSON(wsRequest{Type: "steps", Code: "one"})
	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "steps" || len(resp.Steps) != 1 || resp.Steps[0] != "Step 1: one" {
		t.Errorf("unexpected frame %+v", resp)
	}
}

func TestWebSocketUnknownType(t *testing.T) {
	conn := dialRun(t, setupTest(t, nil))

	conn.WriteJSON(wsRequest{Type: "dance"})
	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Type != "error" {
		t.Errorf("expected error frame, got %+v", resp)
	}
}

func TestRenderContentPage(t *testing.T) {
	s := setupTest(t, nil)

	var b strings.Builder
	q := url.Values{"id": {"basics"}}
	if err := s.RenderContentPage(context.Background(), &b, page.RouteSection, q); err != nil {
		t.Fatalf("RenderContentPage: %v", err)
	}
	if !strings.Contains(b.String(), "<title>Java Basics | Masterclass</title>") {
		t.Errorf("unexpected title in %s", b.String())
	}
}

func TestSelfReferencingSourceDoesNotHang(t *testing.T) {
	r := chi.NewRouter()
	server := httptest.NewServer(r)
	defer server.Close()

	store := content.NewStore(&content.HTTPFetcher{
		URL:    server.URL + content.DefaultPath,
		Client: &http.Client{Timeout: 5 * time.Second},
	})
	s, err := New(Deps{Renderer: page.NewRenderer(store), Content: store})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.RegisterRoutes(r)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if store.Loaded() || store.Loading() {
		t.Errorf("after failed self fetch: Loaded=%v Loading=%v", store.Loaded(), store.Loading())
	}
}

func TestDocumentEndpointLoadsOnDemand(t *testing.T) {
	contentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testDoc))
	}))
	defer contentSrv.Close()

	store := content.NewStore(&content.HTTPFetcher{URL: contentSrv.URL})
	s, err := New(Deps{Renderer: page.NewRenderer(store), Content: store})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := get(t, setupRouter(s), content.DefaultPath)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Java Basics") {
		t.Error("document body not served")
	}
}

func TestNewWithoutCatalog(t *testing.T) {
	src := &staticSource{}
	s, err := New(Deps{Renderer: page.NewRenderer(src), Content: src})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := setupRouter(s)

	if w := get(t, r, "/practice/?program=missing"); w.Code != http.StatusOK {
		t.Errorf("practice page: expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(get(t, r, "/api/questions/vars/").Body.String()); body != "[]" {
		t.Errorf("expected empty list, got %s", body)
	}
}

func TestScriptRunFallsBackOnErrorBody(t *testing.T) {
	body := get(t, setupRouter(setupTest(t, nil)), "/static/script.js").Body.String()
	for _, want := range []string{"resp.ok", `data.output || data.error || "No output returned."`} {
		if !strings.Contains(body, want) {
			t.Errorf("script missing %q", want)
		}
	}
}
