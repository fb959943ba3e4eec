package ui

import (
	"context"

	"folio/internal/clock"
	"folio/internal/contact"
	"folio/internal/nav"
	"folio/internal/theme"

	"go.uber.org/zap"
)

// Env is what pages need from the outside world. Pages never reach for
// globals; everything time-, theme- or network-dependent comes through here.
type Env struct {
	Ctx    context.Context
	Clock  clock.Clock
	Theme  *theme.State
	Relay  contact.Relay
	Logger *zap.Logger
}

func (e Env) withDefaults() Env {
	if e.Ctx == nil {
		e.Ctx = context.Background()
	}
	if e.Clock == nil {
		e.Clock = clock.Real()
	}
	if e.Theme == nil {
		e.Theme = theme.New(nil, theme.Dark, e.Logger)
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e
}

func (e Env) styles() Styles {
	return StylesFor(e.Theme.Get())
}

// newPage mounts the page for path. Unknown paths mount Home.
func newPage(path string, env Env) Page {
	switch path {
	case nav.PathAbout:
		return NewAboutPage(env)
	case nav.PathSkills:
		return NewSkillsPage(env)
	case nav.PathProjects:
		return NewProjectsPage(env)
	case nav.PathExperience:
		return NewExperiencePage(env)
	case nav.PathContact:
		return NewContactPage(env)
	default:
		return NewHomePage(env)
	}
}
