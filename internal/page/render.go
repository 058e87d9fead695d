package page

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ziadkadry99/masterclass/internal/content"
	"github.com/ziadkadry99/masterclass/internal/highlight"
	"github.com/ziadkadry99/masterclass/internal/logging"
)

// NoTopicsText is the single sidebar entry shown for a section without topics.
const NoTopicsText = "No topics found."

// DocumentSource provides the content document. *content.Store satisfies it.
type DocumentSource interface {
	Document(ctx context.Context) (*content.Document, error)
}

// Sanitizer cleans HTML-bearing strings before they reach a page.
type Sanitizer interface {
	Sanitize(s string) string
}

// Renderer fills page targets from the content document.
type Renderer struct {
	source      DocumentSource
	highlighter highlight.Highlighter
	language    string
	sanitizer   Sanitizer
	logger      *logging.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHighlighter runs h over code blocks after a topic renders. language is
// passed to h for every block.
func WithHighlighter(h highlight.Highlighter, language string) Option {
	return func(r *Renderer) {
		r.highlighter = h
		r.language = language
	}
}

// WithSanitizer cleans exercise HTML before it is written.
func WithSanitizer(s Sanitizer) Option {
	return func(r *Renderer) { r.sanitizer = s }
}

// WithLogger sets the renderer's logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a Renderer reading from source.
func NewRenderer(source DocumentSource, opts ...Option) *Renderer {
	r := &Renderer{source: source, logger: logging.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	homeSlots    = []Slot{SlotSectionsContainer}
	sectionSlots = []Slot{SlotSectionTitle}
	sidebarSlots = []Slot{SlotSidebarNav}
	topicSlots   = []Slot{SlotTopicTitle, SlotExplanation, SlotSyntax, SlotExample, SlotLogic, SlotExercises}
)

// Render runs the one renderer that matches route. RouteUnknown falls back to
// probing the target's anchors. It returns the route that was rendered.
func (r *Renderer) Render(ctx context.Context, t Target, route Route, query url.Values) Route {
	if route == RouteUnknown {
		route = Detect(t)
	}
	switch route {
	case RouteHome:
		r.Home(ctx, t)
	case RouteSection:
		r.Section(ctx, t, query.Get("id"))
	case RouteTopic:
		r.Topic(ctx, t, query.Get("section"), query.Get("topic"))
	}
	return route
}

// document loads the content or returns nil. Load failures are already
// logged by the store.
func (r *Renderer) document(ctx context.Context) *content.Document {
	doc, err := r.source.Document(ctx)
	if err != nil {
		r.logger.Debug("rendering without content", "error", err)
		return nil
	}
	return doc
}

// checkSlots logs the slots a renderer needs that the target lacks and
// reports whether any of them are present.
func (r *Renderer) checkSlots(t Target, name string, want []Slot) bool {
	missing := Missing(t, want...)
	if len(missing) > 0 {
		r.logger.Debug("target missing slots", "renderer", name, "slots", missing)
	}
	return len(missing) < len(want)
}

// Home renders one card per section, in document order.
func (r *Renderer) Home(ctx context.Context, t Target) {
	if !r.checkSlots(t, "home", homeSlots) {
		return
	}
	doc := r.document(ctx)
	if doc == nil {
		return
	}

	cards := make([]Item, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		cards = append(cards, Item{
			Title:       s.Title,
			Description: s.Description,
			Href:        SectionHref(s.ID),
		})
	}
	t.SetItems(SlotSectionsContainer, cards)
}

// Section renders the section page title and its sidebar.
func (r *Renderer) Section(ctx context.Context, t Target, sectionID string) {
	if sectionID == "" {
		return
	}
	r.checkSlots(t, "section", sectionSlots)
	doc := r.document(ctx)
	if doc == nil {
		return
	}
	section, ok := doc.Section(sectionID)
	if !ok {
		r.logger.Debug("section not found", "section", sectionID)
		return
	}

	t.SetText(SlotSectionTitle, section.Title)
	r.sidebar(doc, t, sectionID, "")
}

// Sidebar renders the topic navigation for a section, marking currentTopicID
// active. An unknown section leaves the target untouched.
func (r *Renderer) Sidebar(ctx context.Context, t Target, sectionID, currentTopicID string) {
	doc := r.document(ctx)
	if doc == nil {
		return
	}
	r.sidebar(doc, t, sectionID, currentTopicID)
}

func (r *Renderer) sidebar(doc *content.Document, t Target, sectionID, currentTopicID string) {
	section, ok := doc.Section(sectionID)
	if !ok {
		return
	}
	if !r.checkSlots(t, "sidebar", sidebarSlots) {
		return
	}

	if len(section.Topics) == 0 {
		t.SetItems(SlotSidebarNav, []Item{{Title: NoTopicsText}})
		return
	}

	entries := make([]Item, 0, len(section.Topics))
	for _, topic := range section.Topics {
		entries = append(entries, Item{
			Title:  topic.Title,
			Href:   TopicHref(sectionID, topic.ID),
			Active: topic.ID == currentTopicID,
		})
	}
	t.SetItems(SlotSidebarNav, entries)
}

// Topic renders a topic's detail slots, refreshes the sidebar with the topic
// active, then highlights the code blocks.
func (r *Renderer) Topic(ctx context.Context, t Target, sectionID, topicID string) {
	if sectionID == "" || topicID == "" {
		return
	}
	r.checkSlots(t, "topic", topicSlots)
	doc := r.document(ctx)
	if doc == nil {
		return
	}
	_, topic, err := doc.Lookup(sectionID, topicID)
	if err != nil {
		r.logger.Debug("topic not resolved", "error", err)
		return
	}

	t.SetText(SlotTopicTitle, topic.Title)
	t.SetText(SlotExplanation, topic.Explanation)
	t.SetText(SlotSyntax, topic.Syntax)
	t.SetText(SlotExample, topic.Example)
	t.SetText(SlotLogic, topic.Logic)

	if topic.Exercises != nil {
		items := make([]Item, 0, len(topic.Exercises))
		for _, ex := range topic.Exercises {
			items = append(items, Item{HTML: r.exerciseHTML(ex)})
		}
		t.SetItems(SlotExercises, items)
	}

	r.sidebar(doc, t, sectionID, topicID)
	r.highlight(t, SlotSyntax, topic.Syntax)
	r.highlight(t, SlotExample, topic.Example)
}

func (r *Renderer) highlight(t Target, slot Slot, code string) {
	if r.highlighter == nil || code == "" || !t.Has(slot) {
		return
	}
	html, err := r.highlighter.Highlight(code, r.language)
	if err != nil {
		r.logger.Debug("highlight skipped", "slot", slot, "error", err)
		return
	}
	t.SetHTML(slot, html)
}

// SectionHref is the address of a section page.
func SectionHref(sectionID string) string {
	return "/section/?id=" + url.QueryEscape(sectionID)
}

// TopicHref is the address of a topic page.
func TopicHref(sectionID, topicID string) string {
	return fmt.Sprintf("/topic/?section=%s&topic=%s", url.QueryEscape(sectionID), url.QueryEscape(topicID))
}

// ProgramHref is the address of a practice program page.
func ProgramHref(programID string) string {
	return "/practice/?program=" + url.QueryEscape(programID)
}
