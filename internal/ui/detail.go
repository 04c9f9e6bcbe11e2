package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"tinyd/internal/components"
	"tinyd/internal/types"
)

// detailPane is one section of the detail screen with its own scroll position
type detailPane struct {
	title string
	lines func(types.ContainerDetail) []string
	vp    components.Viewport
}

// DetailView shows one inspected container split into panes
type DetailView struct {
	id     string
	detail types.ContainerDetail
	loaded bool

	panes  []*detailPane
	active int

	keys DetailKeyMap
	help help.Model

	refreshEvery int
	skipped      int
}

// NewDetailView returns a detail view with the Status pane active
func NewDetailView() *DetailView {
	return &DetailView{
		panes: []*detailPane{
			{title: "Status", lines: statusLines},
			{title: "Details", lines: detailsLines},
			{title: "Volumes", lines: volumeLines},
			{title: "Network", lines: networkLines},
		},
		keys:         DefaultDetailKeyMap(),
		help:         help.New(),
		refreshEvery: DefaultRefreshTicks,
	}
}

// SetRefreshEvery changes the polling cadence
func (d *DetailView) SetRefreshEvery(ticks int) {
	d.refreshEvery = max(ticks, 1)
}

// ID returns the container being shown
func (d *DetailView) ID() string { return d.id }

// Detail returns the last applied inspect result
func (d *DetailView) Detail() (types.ContainerDetail, bool) { return d.detail, d.loaded }

// ActivePane returns the index of the selected pane
func (d *DetailView) ActivePane() int { return d.active }

// Viewport returns the scroll state of pane i
func (d *DetailView) Viewport(i int) *components.Viewport { return &d.panes[i].vp }

// Open switches the view to a container and scrolls every pane back to the
// origin. The previous container's fields are dropped.
func (d *DetailView) Open(id string) {
	d.id = id
	d.detail = types.ContainerDetail{}
	d.loaded = false
	d.active = 0
	d.skipped = 0
	for _, p := range d.panes {
		p.vp.Reset()
	}
}

// ApplyRefresh shows a fresh inspect result
func (d *DetailView) ApplyRefresh(detail types.ContainerDetail) {
	d.detail = detail
	d.loaded = true
}

// Tick asks for a refresh of the shown container every refreshEvery ticks
func (d *DetailView) Tick() (types.AppCommand, bool) {
	d.skipped++
	if d.skipped < d.refreshEvery {
		return types.AppCommand{}, false
	}
	d.skipped = 0
	return types.RefreshDetail(d.id), true
}

// HandleInput switches panes, scrolls the active pane or maps a verb key to a
// command for the shown container
func (d *DetailView) HandleInput(k types.Key) (types.AppCommand, bool) {
	vp := &d.panes[d.active].vp

	switch {
	case key.Matches(k, d.keys.PrevPane):
		d.active = (d.active + len(d.panes) - 1) % len(d.panes)
	case key.Matches(k, d.keys.NextPane):
		d.active = (d.active + 1) % len(d.panes)
	case key.Matches(k, d.keys.Up):
		vp.ScrollUp()
	case key.Matches(k, d.keys.Down):
		vp.ScrollDown()
	case key.Matches(k, d.keys.Left):
		vp.ScrollLeft()
	case key.Matches(k, d.keys.Right):
		vp.ScrollRight()
	case key.Matches(k, d.keys.Start):
		vp.ScrollToStart()
	case key.Matches(k, d.keys.End):
		vp.ScrollToEnd()
	case key.Matches(k, d.keys.Top):
		vp.ScrollToTop()
	case key.Matches(k, d.keys.Bottom):
		vp.ScrollToBottom()
	case key.Matches(k, d.keys.Back):
		return types.Back(), true
	case key.Matches(k, d.keys.Quit):
		return types.Quit(), true
	case key.Matches(k, d.keys.Restart):
		return types.Restart(d.id), true
	case key.Matches(k, d.keys.Stop):
		return types.Stop(d.id), true
	case key.Matches(k, d.keys.Kill):
		return types.Kill(d.id), true
	case key.Matches(k, d.keys.Remove):
		return types.Remove(types.KindContainers, d.id, true), true
	}
	return types.AppCommand{}, false
}

// Draw renders the pane strip, the active pane and the footer into exactly
// height lines.
func (d *DetailView) Draw(width, height int) string {
	tabs := make([]components.TabItem, len(d.panes))
	for i, p := range d.panes {
		tabs[i] = components.TabItem{Name: p.title}
	}

	rows := max(height-8, 1)
	box := components.NewDetailViewComponent(d.title(), rows).WithWidth(width)

	p := d.panes[d.active]
	var lines []string
	if d.loaded {
		lines = p.lines(d.detail)
	}
	p.vp.RecomputeBounds(lines, box.InnerWidth(), rows)
	vertical, horizontal := p.vp.Offsets()
	maxVertical, maxHorizontal := p.vp.Bounds()

	box = box.
		SetContent(p.vp.Visible(lines, box.InnerWidth(), rows)).
		SetScroll(maxVertical, vertical, horizontal, maxHorizontal)

	d.help.Width = max(width-4, 0)
	footer := components.NewActionBarComponent().
		WithWidth(width).
		SetActions(d.help.ShortHelpView(d.keys.ShortHelp()))

	var b strings.Builder
	b.WriteString(components.NewTabsComponent(tabs, d.active).WithWidth(width).View())
	b.WriteString(box.View())
	b.WriteString(footer.View())
	return b.String()
}

func (d *DetailView) title() string {
	if d.loaded && d.detail.Name != "" {
		return "Container " + d.detail.Name
	}
	return "Container " + d.id
}

func field(label, value string) string {
	return fmt.Sprintf("%-16s %s", label+":", value)
}

func section(title string, items []string) []string {
	out := []string{title + ":"}
	if len(items) == 0 {
		return append(out, "  -")
	}
	for _, item := range items {
		out = append(out, "  "+item)
	}
	return out
}

func statusLines(c types.ContainerDetail) []string {
	return []string{
		field("ID", c.ID),
		field("Name", c.Name),
		field("State", c.State),
		field("Created", c.Created),
		field("Started", c.StartedAt),
		field("Restart Policy", c.RestartPolicy),
	}
}

func detailsLines(c types.ContainerDetail) []string {
	lines := []string{
		field("Image", c.Image),
		field("Cmd", c.Cmd),
		field("Entrypoint", c.Entrypoint),
		"",
	}
	lines = append(lines, section("Env", c.Env)...)
	lines = append(lines, "")
	return append(lines, section("Labels", c.Labels)...)
}

func volumeLines(c types.ContainerDetail) []string {
	return section("Mounts", c.Mounts)
}

func networkLines(c types.ContainerDetail) []string {
	lines := []string{field("IP Address", c.IPAddress), ""}
	lines = append(lines, section("Ports", c.Ports)...)
	lines = append(lines, "")
	return append(lines, section("Networks", c.Networks)...)
}
