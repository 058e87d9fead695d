package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema describes the shape every renderer relies on. Optional
// fields are typed but not required.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["sections"],
  "properties": {
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "description": {"type": ["string", "null"]},
          "topics": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["id", "title"],
              "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "explanation": {"type": ["string", "null"]},
                "syntax": {"type": ["string", "null"]},
                "example": {"type": ["string", "null"]},
                "logic": {"type": ["string", "null"]},
                "exercises": {"type": ["array", "null"], "items": {"type": "string"}}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	return compiledSchema, schemaErr
}

// Parse decodes and checks a raw document. With checkSchema set the body is
// validated against the document schema before decoding.
func Parse(data []byte, checkSchema bool) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty body: %w", ErrMalformed)
	}

	if checkSchema {
		schema, err := loadSchema()
		if err != nil {
			return nil, fmt.Errorf("compiling document schema: %w", err)
		}
		result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, fmt.Errorf("invalid JSON format: %v: %w", err, ErrMalformed)
		}
		if !result.Valid() {
			msgs := make([]string, 0, len(result.Errors()))
			for _, e := range result.Errors() {
				msgs = append(msgs, e.String())
			}
			return nil, fmt.Errorf("schema violations: %s: %w", strings.Join(msgs, "; "), ErrMalformed)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON format: %v: %w", err, ErrMalformed)
	}
	if doc.Sections == nil {
		return nil, fmt.Errorf("missing sections: %w", ErrMalformed)
	}
	if err := doc.checkIDs(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// checkIDs enforces unique section IDs and unique topic IDs per section.
func (d *Document) checkIDs() error {
	sections := make(map[string]bool, len(d.Sections))
	for _, s := range d.Sections {
		if sections[s.ID] {
			return fmt.Errorf("duplicate section id %q: %w", s.ID, ErrMalformed)
		}
		sections[s.ID] = true

		topics := make(map[string]bool, len(s.Topics))
		for _, t := range s.Topics {
			if topics[t.ID] {
				return fmt.Errorf("duplicate topic id %q in section %q: %w", t.ID, s.ID, ErrMalformed)
			}
			topics[t.ID] = true
		}
	}
	return nil
}
