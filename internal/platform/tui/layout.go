package tui

import (
	"github.com/vovakirdan/skycat/internal/core"
	"github.com/vovakirdan/skycat/internal/game"
)

// Control panel labels
const (
	LabelStart    = "[ Start ]"
	LabelJump     = "[ Jump ]"
	LabelJumpJump = "[ Jump Jump ]"
	LabelDead     = "You Dead"
	buttonSpacing = 3
	reservedRows  = 2 // Score line and control panel; the help line is extra
	minPlayRows   = 3
)

// Button is a clickable control panel zone.
type Button struct {
	Label  string
	Action core.Action
	Rect   core.Rect
}

// Layout splits the screen buffer into the score line, the playground and
// the control panel. The help line is rendered below the buffer.
type Layout struct {
	Score      core.Rect
	Playground core.Rect
	Panel      core.Rect
}

// NewLayout computes the layout for a screen buffer of w x h cells.
func NewLayout(w, h int) Layout {
	if w <= 0 || h <= 0 {
		return Layout{}
	}
	playRows := core.Max(h-reservedRows, 0)
	if playRows < minPlayRows {
		// Too small for a playground; keep the panel usable.
		playRows = 0
	}
	return Layout{
		Score:      core.NewRect(0, 0, w, 1),
		Playground: core.NewRect(0, 1, w, playRows),
		Panel:      core.NewRect(0, core.Min(1+playRows, h-1), w, 1),
	}
}

// Buttons returns the control panel buttons for state, centered in the panel.
// Dead has no buttons.
func (l Layout) Buttons(state game.State) []Button {
	var buttons []Button
	switch state {
	case game.NotStarted:
		buttons = []Button{{Label: LabelStart, Action: core.ActionStart}}
	case game.Running:
		buttons = []Button{
			{Label: LabelJump, Action: core.ActionJump},
			{Label: LabelJumpJump, Action: core.ActionStrongJump},
		}
	default:
		return nil
	}

	total := buttonSpacing * (len(buttons) - 1)
	for _, b := range buttons {
		total += len(b.Label)
	}
	// A panel narrower than the buttons keeps the first one on screen.
	x := core.Clamp(l.Panel.X+(l.Panel.W-total)/2, l.Panel.X, l.Panel.Right())
	for i := range buttons {
		w := len(buttons[i].Label)
		buttons[i].Rect = core.NewRect(x, l.Panel.Y, w, 1)
		x += w + buttonSpacing
	}
	return buttons
}

// ButtonAt returns the button under the cell (x, y), if any.
func (l Layout) ButtonAt(state game.State, x, y int) (Button, bool) {
	for _, b := range l.Buttons(state) {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
