package practice

import (
	"context"

	"github.com/ziadkadry99/masterclass/internal/logging"
	"github.com/ziadkadry99/masterclass/internal/page"
	"github.com/ziadkadry99/masterclass/internal/runner"
)

// NotAvailable fills the sample input or output when a program has none.
const NotAvailable = "N/A"

// Runner executes source and shows the result. *runner.Client satisfies it.
type Runner interface {
	Run(ctx context.Context, source string, out runner.Display) string
}

// Controller owns the practice page state: the currently loaded program and
// the editor actions. It is created per page and never shared.
type Controller struct {
	target page.Target
	runner Runner
	logger *logging.Logger

	current *Program
	// animationRunning is reserved for the step animation panel. Nothing
	// starts or stops an animation yet, so it is never read.
	animationRunning bool
}

// NewController creates a controller writing into target. r may be nil, in
// which case Run shows runner.ErrorText.
func NewController(target page.Target, r Runner, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Controller{target: target, runner: r, logger: logger}
}

// Current returns the loaded program, or nil.
func (c *Controller) Current() *Program {
	return c.current
}

// LoadProgram replaces the current program and fills its fields. A nil
// program clears the selection. The practice panels are reset either way.
func (c *Controller) LoadProgram(p *Program) {
	c.current = p
	if p != nil {
		c.target.SetText(page.SlotProgramTitle, p.Title)
		c.target.SetText(page.SlotProgramStatement, p.Statement)
		c.target.SetText(page.SlotProgramInput, orNotAvailable(p.Input))
		c.target.SetText(page.SlotProgramOutput, orNotAvailable(p.Output))
		c.target.SetText(page.SlotLogicBox, p.Logic)
		c.target.SetText(page.SlotSolutionBox, p.Solution)
		if p.Starter != "" {
			c.target.SetText(page.SlotEditor, p.Starter)
		}
	}
	c.Reset()
}

// Reset hides the logic and solution panels and empties the animation panel.
func (c *Controller) Reset() {
	c.target.SetHidden(page.SlotLogicBox, true)
	c.target.SetHidden(page.SlotSolutionBox, true)
	c.target.SetActive(page.SlotAnimationPanel, false)
	c.target.Clear(page.SlotAnimationPanel)
}

// Run keeps source in the editor and shows the execution result in the run
// output slot.
func (c *Controller) Run(ctx context.Context, source string) string {
	c.target.SetText(page.SlotEditor, source)
	out := runner.DisplayFunc(func(text string) {
		c.target.SetText(page.SlotRunOutput, text)
	})
	if c.runner == nil {
		c.logger.Error("code run requested without a runner configured")
		out.Show(runner.ErrorText)
		return runner.ErrorText
	}
	return c.runner.Run(ctx, source, out)
}

// ShowSteps keeps source in the editor and lists its numbered steps.
func (c *Controller) ShowSteps(source string) {
	if !c.target.Has(page.SlotStepOutput) {
		return
	}
	c.target.SetText(page.SlotEditor, source)
	steps := runner.Steps(source)
	items := make([]page.Item, len(steps))
	for i, s := range steps {
		items[i] = page.Item{Title: s}
	}
	c.target.SetItems(page.SlotStepOutput, items)
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}

// ListPrograms fills the program index, marking currentID active.
func (c *Controller) ListPrograms(programs []Program, currentID string) {
	items := make([]page.Item, 0, len(programs))
	for _, p := range programs {
		items = append(items, page.Item{
			Title:  p.Title,
			Href:   page.ProgramHref(p.ID),
			Active: p.ID == currentID,
		})
	}
	c.target.SetItems(page.SlotProgramList, items)
}
