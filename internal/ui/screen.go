package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is the interface for all UI screens.
type Screen interface {
	// Update handles input and logic.
	Update() error
	// Draw renders the screen.
	Draw(dst *ebiten.Image)
	// Layout tells the screen the current window size in layout pixels.
	Layout(width, height int)
	// OnEnter is called when the screen becomes active.
	OnEnter()
	// OnExit is called when the screen is removed or covered.
	OnExit()
	// Name returns the screen name for debugging.
	Name() string
}

// ScreenManager manages a stack of screens.
type ScreenManager struct {
	stack         []Screen
	width, height int
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

// Push covers the current screen with s.
func (sm *ScreenManager) Push(s Screen) {
	if top := sm.Current(); top != nil {
		top.OnExit()
	}
	sm.stack = append(sm.stack, s)
	s.Layout(sm.width, sm.height)
	s.OnEnter()
}

// ClearStack exits and removes all screens from the stack.
func (sm *ScreenManager) ClearStack() {
	if top := sm.Current(); top != nil {
		top.OnExit()
	}
	sm.stack = nil
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Layout records the window size and forwards it to the active screen.
func (sm *ScreenManager) Layout(width, height int) {
	sm.width, sm.height = width, height
	if s := sm.Current(); s != nil {
		s.Layout(width, height)
	}
}

func (sm *ScreenManager) Update() error {
	if s := sm.Current(); s != nil {
		return s.Update()
	}
	return nil
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}
