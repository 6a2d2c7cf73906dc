package tui

import (
	"time"

	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/service"
)

// Message types for the TUI

// SplashDoneMsg ends the onboarding splash
type SplashDoneMsg struct{}

// ProgramsRestoredMsg signals that cached programs were applied
type ProgramsRestoredMsg struct {
	Gen int
}

// ProgramsLoadedMsg signals the end of a program fetch
type ProgramsLoadedMsg struct {
	Gen int
	Err error
}

// LikeCommittedMsg signals that a like toggle settled
type LikeCommittedMsg struct {
	Gen    int
	Toggle service.LikeToggle
	Err    error
}

// ProgramSharedMsg signals the end of a share
type ProgramSharedMsg struct {
	Program domain.Program
	Err     error
}

// SubscribedMsg signals the end of a newsletter signup
type SubscribedMsg struct {
	Subscriber domain.Subscriber
	Err        error
}

// MessageSentMsg signals the end of a contact form send
type MessageSentMsg struct {
	Err error
}

// OpenedMsg signals that a link or video was handed to the system
type OpenedMsg struct {
	URL string
	Err error
}

// AnimTickMsg advances running animations by one frame
type AnimTickMsg struct {
	At time.Time
}

// ShakeMsg starts one shake of the Subscribe button
type ShakeMsg struct {
	Gen int
}

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}
