package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/breakout"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Confirm    key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch},
		{k.Confirm, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "paddle left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "paddle right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/click", "launch"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/next/restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// Keyboard paddle movement is expressed as pointer moves of Step pixels.
type KeyMapper struct {
	Keys KeyMap
	Step float64 // Paddle travel per key press, in field pixels
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultKeyMap(), Step: 40}
}

// MapKeyToFrame updates an input frame based on a key message.
// paddleCenter is the paddle's current center; panel is the visible overlay.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, paddleCenter float64, panel breakout.Panel) bool {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		frame.Set(core.ActionQuit)
		return true

	case key.Matches(msg, km.Keys.Left):
		frame.SetPointer(paddleCenter - km.Step)

	case key.Matches(msg, km.Keys.Right):
		frame.SetPointer(paddleCenter + km.Step)

	case key.Matches(msg, km.Keys.Launch):
		if a := panel.Action(); a != core.ActionNone {
			frame.Set(a)
		} else {
			frame.Set(core.ActionLaunch)
		}

	case key.Matches(msg, km.Keys.Confirm):
		if a := panel.Action(); a != core.ActionNone {
			frame.Set(a)
		}
	}
	return false
}

// MapMouseToFrame updates an input frame from a mouse message.
// fieldX converts a screen column to a field x-coordinate.
// A left click presses the visible panel's button, or launches while playing.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame, fieldX func(col int) float64, panel breakout.Panel) {
	frame.SetPointer(fieldX(msg.X))

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if a := panel.Action(); a != core.ActionNone {
		frame.Set(a)
		return
	}
	frame.Set(core.ActionLaunch)
}
