package event

import "fmt"

// Action is a decoded player intent.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
	ActionHold
	ActionPause
	ActionConfirm
	ActionEscape
	ActionModeCycleUp
	ActionModeCycleDown
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionMoveLeft:      "move-left",
	ActionMoveRight:     "move-right",
	ActionSoftDrop:      "soft-drop",
	ActionHardDrop:      "hard-drop",
	ActionRotateCW:      "rotate-cw",
	ActionHold:          "hold",
	ActionPause:         "pause",
	ActionConfirm:       "confirm",
	ActionEscape:        "escape",
	ActionModeCycleUp:   "mode-up",
	ActionModeCycleDown: "mode-down",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
