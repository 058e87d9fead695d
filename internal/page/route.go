package page

import "strings"

// Route identifies which page template a request is for.
type Route int

const (
	RouteUnknown Route = iota
	RouteHome
	RouteSection
	RouteTopic
	RoutePractice
)

func (r Route) String() string {
	switch r {
	case RouteHome:
		return "home"
	case RouteSection:
		return "section"
	case RouteTopic:
		return "topic"
	case RoutePractice:
		return "practice"
	default:
		return "unknown"
	}
}

// Slots returns the slots the route's template owns.
func (r Route) Slots() []Slot {
	switch r {
	case RouteHome:
		return []Slot{SlotSectionsContainer}
	case RouteSection:
		return []Slot{SlotSectionTitle, SlotSidebarNav}
	case RouteTopic:
		return []Slot{
			SlotTopicTitle, SlotExplanation, SlotSyntax, SlotExample,
			SlotLogic, SlotExercises, SlotSidebarNav,
		}
	case RoutePractice:
		return []Slot{
			SlotProgramList, SlotProgramTitle, SlotProgramStatement,
			SlotProgramInput, SlotProgramOutput, SlotLogicBox, SlotSolutionBox,
			SlotAnimationPanel, SlotEditor, SlotRunOutput, SlotStepOutput,
		}
	default:
		return nil
	}
}

// RouteForPath maps a request path to a route.
func RouteForPath(path string) Route {
	switch strings.Trim(path, "/") {
	case "":
		return RouteHome
	case "section":
		return RouteSection
	case "topic":
		return RouteTopic
	case "practice":
		return RoutePractice
	default:
		return RouteUnknown
	}
}

// Detect picks a route from the anchors a target has, for hosts that cannot
// supply one. Probe order is sections container, section title, topic title.
func Detect(t Target) Route {
	switch {
	case t.Has(SlotSectionsContainer):
		return RouteHome
	case t.Has(SlotSectionTitle):
		return RouteSection
	case t.Has(SlotTopicTitle):
		return RouteTopic
	default:
		return RouteUnknown
	}
}
