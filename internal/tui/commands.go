package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/revenland/revenland/internal/domain"
	"github.com/revenland/revenland/internal/service"
	"github.com/revenland/revenland/internal/tui/anim"
)

// Command factories for async operations

// SplashCmd ends the splash after delay
func SplashCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SplashDoneMsg{}
	})
}

// RestoreProgramsCmd applies cached programs while the first fetch runs
func RestoreProgramsCmd(svc *service.ProgramService, gen int) tea.Cmd {
	return func() tea.Msg {
		if !svc.Restore() {
			return nil
		}
		return ProgramsRestoredMsg{Gen: gen}
	}
}

// LoadProgramsCmd fetches every program
func LoadProgramsCmd(ctx context.Context, svc *service.ProgramService, gen int) tea.Cmd {
	return func() tea.Msg {
		return ProgramsLoadedMsg{Gen: gen, Err: svc.Load(ctx)}
	}
}

// CommitLikeCmd sends an optimistic like toggle to the store
func CommitLikeCmd(ctx context.Context, svc *service.ProgramService, t service.LikeToggle, gen int) tea.Cmd {
	return func() tea.Msg {
		return LikeCommittedMsg{Gen: gen, Toggle: t, Err: svc.Commit(ctx, t)}
	}
}

// ShareProgramCmd hands a program's share message to the platform
func ShareProgramCmd(svc *service.ProgramService, p domain.Program) tea.Cmd {
	return func() tea.Msg {
		return ProgramSharedMsg{Program: p, Err: svc.Share(p)}
	}
}

// SubscribeCmd submits the newsletter form
func SubscribeCmd(ctx context.Context, svc *service.NewsletterService, name, email string) tea.Cmd {
	return func() tea.Msg {
		sub, err := svc.Subscribe(ctx, name, email)
		return SubscribedMsg{Subscriber: sub, Err: err}
	}
}

// SendMessageCmd submits the contact form
func SendMessageCmd(ctx context.Context, svc *service.ContactService, msg domain.ContactMessage) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.Send(ctx, msg)
		return MessageSentMsg{Err: err}
	}
}

// OpenURLCmd opens a link with the system handler
func OpenURLCmd(opener domain.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{URL: url, Err: opener.Open(url)}
	}
}

// PlayVideoCmd opens a video in a media player
func PlayVideoCmd(opener domain.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{URL: url, Err: opener.Play(url)}
	}
}

// AnimTickCmd schedules the next animation frame
func AnimTickCmd() tea.Cmd {
	return tea.Tick(anim.Frame(), func(t time.Time) tea.Msg {
		return AnimTickMsg{At: t}
	})
}

// ShakeCmd schedules the next shake of the Subscribe button
func ShakeCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ShakeMsg{Gen: gen}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
