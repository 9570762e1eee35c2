package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockterm/pkg/event"
	"github.com/qnkhuat/blockterm/pkg/game"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.Action
}

func (b *Keybinding) matches(ev *tcell.EventKey) bool {
	return !((b.k != 0 && b.k != ev.Key()) || (b.r != 0 && b.r != ev.Rune()) || (b.m != 0 && b.m != ev.Modifiers()))
}

var playKeybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{r: 'k', a: event.ActionRotateCW},
	{r: 'K', a: event.ActionRotateCW},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'c', a: event.ActionHold},
	{r: 'C', a: event.ActionHold},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
	{k: tcell.KeyEnter, a: event.ActionConfirm},
	{k: tcell.KeyEscape, a: event.ActionEscape},
}

var menuKeybindings = []*Keybinding{
	{k: tcell.KeyUp, a: event.ActionModeCycleUp},
	{r: 'k', a: event.ActionModeCycleUp},
	{r: 'K', a: event.ActionModeCycleUp},
	{k: tcell.KeyDown, a: event.ActionModeCycleDown},
	{r: 'j', a: event.ActionModeCycleDown},
	{r: 'J', a: event.ActionModeCycleDown},
	{k: tcell.KeyEnter, a: event.ActionConfirm},
}

// Decode maps a key event to the action it means in state s
func Decode(s game.State, ev *tcell.EventKey) (event.Action, bool) {
	bindings := playKeybindings
	if s == game.StateMenu {
		bindings = menuKeybindings
	}

	for _, bind := range bindings {
		if bind.matches(ev) {
			return bind.a, true
		}
	}

	return event.ActionNone, false
}

// quitKey reports whether ev leaves the program from state s
func quitKey(s game.State, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if s != game.StateMenu {
		return false
	}
	return ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}
