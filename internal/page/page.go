package page

import (
	"html/template"
)

type slotState struct {
	text   string
	html   template.HTML
	items  []Item
	hidden bool
	active bool
}

// Page is an in-memory rendering target with a fixed set of slots.
type Page struct {
	route Route
	slots map[Slot]*slotState
}

// New creates a page for route with the slots that route's template owns.
func New(route Route) *Page {
	return NewWithSlots(route, route.Slots()...)
}

// NewWithSlots creates a page owning exactly the given slots.
func NewWithSlots(route Route, slots ...Slot) *Page {
	p := &Page{route: route, slots: make(map[Slot]*slotState, len(slots))}
	for _, s := range slots {
		p.slots[s] = &slotState{hidden: hiddenByDefault(s)}
	}
	return p
}

// hiddenByDefault lists panels the practice template starts with collapsed.
func hiddenByDefault(s Slot) bool {
	return s == SlotLogicBox || s == SlotSolutionBox
}

// Route returns the route the page was built for.
func (p *Page) Route() Route { return p.route }

func (p *Page) Has(slot Slot) bool {
	_, ok := p.slots[slot]
	return ok
}

func (p *Page) SetText(slot Slot, text string) {
	if st, ok := p.slots[slot]; ok {
		st.text = text
		st.html = ""
	}
}

func (p *Page) SetHTML(slot Slot, html template.HTML) {
	if st, ok := p.slots[slot]; ok {
		st.html = html
	}
}

func (p *Page) SetItems(slot Slot, items []Item) {
	if st, ok := p.slots[slot]; ok {
		st.items = make([]Item, len(items))
		copy(st.items, items)
	}
}

func (p *Page) SetHidden(slot Slot, hidden bool) {
	if st, ok := p.slots[slot]; ok {
		st.hidden = hidden
	}
}

func (p *Page) SetActive(slot Slot, active bool) {
	if st, ok := p.slots[slot]; ok {
		st.active = active
	}
}

func (p *Page) Clear(slot Slot) {
	if st, ok := p.slots[slot]; ok {
		st.text = ""
		st.html = ""
		st.items = nil
	}
}

// Text returns the plain text of a slot.
func (p *Page) Text(slot Slot) string {
	if st, ok := p.slots[slot]; ok {
		return st.text
	}
	return ""
}

// HTML returns the slot's HTML when set, otherwise its escaped text.
func (p *Page) HTML(slot Slot) template.HTML {
	st, ok := p.slots[slot]
	if !ok {
		return ""
	}
	if st.html != "" {
		return st.html
	}
	return template.HTML(template.HTMLEscapeString(st.text))
}

// Highlighted reports whether the slot carries HTML rather than plain text.
func (p *Page) Highlighted(slot Slot) bool {
	st, ok := p.slots[slot]
	return ok && st.html != ""
}

// Items returns the list entries of a slot.
func (p *Page) Items(slot Slot) []Item {
	if st, ok := p.slots[slot]; ok {
		return st.items
	}
	return nil
}

// Hidden reports whether a slot is collapsed.
func (p *Page) Hidden(slot Slot) bool {
	if st, ok := p.slots[slot]; ok {
		return st.hidden
	}
	return true
}

// Active reports whether a slot is marked active.
func (p *Page) Active(slot Slot) bool {
	if st, ok := p.slots[slot]; ok {
		return st.active
	}
	return false
}
