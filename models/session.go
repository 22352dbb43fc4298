package models

import "sync"

// Screen is the screen a session is currently looking at
type Screen string

const (
	ScreenGrid    Screen = "grid"
	ScreenDetails Screen = "details"
)

// NavigationState holds which screen is shown and what is selected
type NavigationState struct {
	Screen     Screen
	Collection string
	SelectedID string // only meaningful when Screen == ScreenDetails
}

// FlashKind classifies a one-shot message shown after a reservation attempt
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a message shown once on the next render
type Flash struct {
	Kind    FlashKind
	Message string
}

// ReservationForm keeps what the visitor typed so it survives re-renders
type ReservationForm struct {
	Name    string
	Contact string
	Error   string // inline validation message
}

// Session is the state of a single visitor. It is never shared.
type Session struct {
	mu sync.Mutex

	ID       string
	Nav      NavigationState
	Carousel map[string]int // product key -> image offset
	Form     ReservationForm
	Flash    *Flash
}

// NewSession returns a session on the grid screen of the given collection
func NewSession(id, collection string) *Session {
	return &Session{
		ID: id,
		Nav: NavigationState{
			Screen:     ScreenGrid,
			Collection: collection,
		},
		Carousel: make(map[string]int),
	}
}

// Lock serializes actions within the session
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session
func (s *Session) Unlock() { s.mu.Unlock() }

// TakeFlash returns the pending flash and clears it
func (s *Session) TakeFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}
