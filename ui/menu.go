package ui

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/mutant/logger"
)

const (
	PanelMain      = "main"
	PanelPause     = "pause"
	PanelStory     = "story"
	PanelAnalytics = "analytics"
)

var ErrMissingPanel = errors.New("ui: missing panel")

// Panel is anything with a visibility toggle.
type Panel interface {
	SetVisible(visible bool)
	IsVisible() bool
}

// Pauser freezes and resumes the simulation.
type Pauser interface {
	SetPaused(paused bool)
}

// Controller owns which menu panels are showing and whether the game is paused.
type Controller struct {
	pauser Pauser
	panels map[string]Panel
	paused bool
}

// NewController requires a main panel; pause, story and analytics are
// optional. Every panel starts hidden.
func NewController(pauser Pauser, panels map[string]Panel) (*Controller, error) {
	if panels[PanelMain] == nil {
		return nil, fmt.Errorf("ui: new controller: %w: %s", ErrMissingPanel, PanelMain)
	}
	c := &Controller{
		pauser: pauser,
		panels: make(map[string]Panel, len(panels)),
	}
	for name, p := range panels {
		if p == nil {
			continue
		}
		c.panels[name] = p
	}
	c.HideAll()
	return c, nil
}

// ShowMain hides everything else, shows the main menu and unpauses.
func (c *Controller) ShowMain() {
	c.HideAll()
	c.panels[PanelMain].SetVisible(true)
	c.setPaused(false)
}

func (c *Controller) HideAll() {
	for _, p := range c.panels {
		if p.IsVisible() {
			p.SetVisible(false)
		}
	}
}

func (c *Controller) ShowPause() error {
	p, err := c.panel(PanelPause)
	if err != nil {
		return err
	}
	p.SetVisible(true)
	c.setPaused(true)
	return nil
}

func (c *Controller) HidePause() error {
	p, err := c.panel(PanelPause)
	if err != nil {
		return err
	}
	p.SetVisible(false)
	c.setPaused(false)
	return nil
}

func (c *Controller) TogglePause() error {
	p, err := c.panel(PanelPause)
	if err != nil {
		return err
	}
	if p.IsVisible() {
		return c.HidePause()
	}
	return c.ShowPause()
}

func (c *Controller) Paused() bool {
	return c.paused
}

// Visible lists the names of the showing panels in sorted order.
func (c *Controller) Visible() []string {
	var out []string
	for name, p := range c.panels {
		if p.IsVisible() {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (c *Controller) panel(name string) (Panel, error) {
	p, ok := c.panels[name]
	if !ok {
		logger.Log.WithField("panel", name).Warn("ui: panel not registered")
		return nil, fmt.Errorf("%w: %s", ErrMissingPanel, name)
	}
	return p, nil
}

func (c *Controller) setPaused(paused bool) {
	c.paused = paused
	if c.pauser != nil {
		c.pauser.SetPaused(paused)
	}
}
