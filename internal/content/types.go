// Package content loads the course content document and keeps it cached for
// the lifetime of the process.
package content

// Document is the root of the content resource.
type Document struct {
	Sections []Section `json:"sections"`
}

// Section is a top-level grouping of topics.
type Section struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Topics      []Topic `json:"topics"`
}

// Topic is a single lesson inside a section. Exercises is nil when the
// document omits the field.
type Topic struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Explanation string   `json:"explanation,omitempty"`
	Syntax      string   `json:"syntax,omitempty"`
	Example     string   `json:"example,omitempty"`
	Logic       string   `json:"logic,omitempty"`
	Exercises   []string `json:"exercises,omitempty"`
}

// Section returns the section with the given ID.
func (d *Document) Section(id string) (*Section, bool) {
	if d == nil {
		return nil, false
	}
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i], true
		}
	}
	return nil, false
}

// Topic returns the topic with the given ID within the section.
func (s *Section) Topic(id string) (*Topic, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Topics {
		if s.Topics[i].ID == id {
			return &s.Topics[i], true
		}
	}
	return nil, false
}

// Lookup resolves a section and topic pair. It returns ErrNotFound when
// either identifier is absent.
func (d *Document) Lookup(sectionID, topicID string) (*Section, *Topic, error) {
	section, ok := d.Section(sectionID)
	if !ok {
		return nil, nil, notFound("section", sectionID)
	}
	topic, ok := section.Topic(topicID)
	if !ok {
		return section, nil, notFound("topic", topicID)
	}
	return section, topic, nil
}
