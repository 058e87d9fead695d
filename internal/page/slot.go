// Package page renders content into named page slots. A Page stands in for
// the page template: it owns a fixed set of slots and ignores writes to slots
// it does not have.
package page

import "html/template"

// Slot names a region of a page template.
type Slot string

const (
	SlotSectionsContainer Slot = "sections-container"
	SlotSectionTitle      Slot = "section-title"
	SlotTopicTitle        Slot = "topic-title"
	SlotExplanation       Slot = "explanation-text"
	SlotSyntax            Slot = "syntax-code"
	SlotExample           Slot = "example-code"
	SlotLogic             Slot = "logic-text"
	SlotExercises         Slot = "exercises-list"
	SlotSidebarNav        Slot = "sidebar-nav"

	SlotProgramTitle     Slot = "prog-title"
	SlotProgramStatement Slot = "prog-statement"
	SlotProgramInput     Slot = "prog-input"
	SlotProgramOutput    Slot = "prog-output"
	SlotLogicBox         Slot = "logic-box"
	SlotSolutionBox      Slot = "solution-box"
	SlotAnimationPanel   Slot = "animation-panel"
	SlotEditor           Slot = "java-editor"
	SlotRunOutput        Slot = "program-output"
	SlotStepOutput       Slot = "step-output"
	SlotProgramList      Slot = "program-list"
)

// Item is one entry of a list slot: a card, a nav link or a list row.
type Item struct {
	Title       string
	Description string
	Href        string
	HTML        template.HTML
	Active      bool
}

// Target is anything renderers can write into. Writes to a slot the target
// does not have are dropped.
type Target interface {
	Has(slot Slot) bool
	SetText(slot Slot, text string)
	SetHTML(slot Slot, html template.HTML)
	SetItems(slot Slot, items []Item)
	SetHidden(slot Slot, hidden bool)
	SetActive(slot Slot, active bool)
	Clear(slot Slot)
}

// Missing returns the slots in want that t does not have.
func Missing(t Target, want ...Slot) []Slot {
	var missing []Slot
	for _, s := range want {
		if !t.Has(s) {
			missing = append(missing, s)
		}
	}
	return missing
}
