package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tinyd/internal/components"
	"tinyd/internal/types"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// NewContainerList builds the containers tab. Rows grow with the number of
// published ports.
func NewContainerList() *ResourceList[types.ContainerRow] {
	columns := []components.Column{
		{Width: 3},
		{Title: "NAME", Flex: 3},
		{Title: "IMAGE", Flex: 3},
		{Title: "STATUS", Width: 12},
		{Title: "PORTS", Width: 20},
		{Title: "ID", Width: 14},
	}
	cells := func(r types.ContainerRow) []string {
		return []string{
			components.StatusStyle(r.Status).Render("●"),
			r.Name,
			r.Image,
			r.Status,
			strings.Join(r.Ports, "\n"),
			r.ShortID,
		}
	}
	height := func(r types.ContainerRow) int { return components.RowHeight(len(r.Ports)) }

	return newResourceList(types.KindContainers, columns, cells, height).
		withAction(key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
			func(r types.ContainerRow) types.AppCommand { return types.OpenDetail(r.ID) }).
		withAction(key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
			func(r types.ContainerRow) types.AppCommand { return types.Restart(r.ID) }).
		withAction(key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
			func(r types.ContainerRow) types.AppCommand { return types.Stop(r.ID) }).
		withAction(key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "kill")),
			func(r types.ContainerRow) types.AppCommand { return types.Kill(r.ID) }).
		withAction(key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("d", "remove")),
			func(r types.ContainerRow) types.AppCommand { return types.Remove(types.KindContainers, r.ID, true) }).
		withFilter(key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "running/all")),
			"running only", types.ContainerRow.Running)
}

// NewImageList builds the images tab, one tag per line
func NewImageList() *ResourceList[types.ImageRow] {
	columns := []components.Column{
		{Title: "ID", Width: 14},
		{Title: "TAGS", Flex: 4},
		{Title: "SIZE", Width: 10, AlignRight: true},
		{Title: "CREATED", Flex: 2},
		{Title: "IN USE", Width: 8},
	}
	cells := func(r types.ImageRow) []string {
		return []string{r.ShortID, strings.Join(r.Tags, "\n"), r.Size, r.Created, yesNo(r.InUse)}
	}
	height := func(r types.ImageRow) int { return components.RowHeight(len(r.Tags)) }

	return newResourceList(types.KindImages, columns, cells, height).
		withAction(key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("d", "remove")),
			func(r types.ImageRow) types.AppCommand { return types.Remove(types.KindImages, r.ID, false) }).
		withAction(key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "force remove")),
			func(r types.ImageRow) types.AppCommand { return types.Remove(types.KindImages, r.ID, true) }).
		withFilter(key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dangling")),
			"dangling hidden", func(r types.ImageRow) bool { return !r.Dangling })
}

// NewVolumeList builds the volumes tab, one using container per line
func NewVolumeList() *ResourceList[types.VolumeRow] {
	columns := []components.Column{
		{Title: "NAME", Flex: 3},
		{Title: "DRIVER", Width: 10},
		{Title: "USED BY", Flex: 2},
		{Title: "CREATED", Width: 18},
	}
	cells := func(r types.VolumeRow) []string {
		return []string{r.Name, r.Driver, strings.Join(r.UsedBy, "\n"), r.Created}
	}
	height := func(r types.VolumeRow) int { return components.RowHeight(len(r.UsedBy)) }

	return newResourceList(types.KindVolumes, columns, cells, height).
		withAction(key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("d", "remove")),
			func(r types.VolumeRow) types.AppCommand { return types.Remove(types.KindVolumes, r.Name, false) }).
		withAction(key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "force remove")),
			func(r types.VolumeRow) types.AppCommand { return types.Remove(types.KindVolumes, r.Name, true) })
}

// NewNetworkList builds the networks tab. Every row is three lines tall.
func NewNetworkList() *ResourceList[types.NetworkRow] {
	columns := []components.Column{
		{Title: "ID", Width: 16},
		{Title: "NAME", Flex: 2},
		{Title: "DRIVER", Width: 9},
		{Title: "SCOPE", Width: 7},
		{Title: "IPV4", Flex: 1},
		{Title: "IPV6", Flex: 1},
		{Title: "IN USE", Width: 8},
	}
	cells := func(r types.NetworkRow) []string {
		return []string{r.ShortID, r.Name, r.Driver, r.Scope, r.IPv4, r.IPv6, yesNo(r.InUse)}
	}
	height := func(types.NetworkRow) int { return components.RowHeight(1) }

	return newResourceList(types.KindNetworks, columns, cells, height).
		withAction(key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("d", "remove")),
			func(r types.NetworkRow) types.AppCommand { return types.Remove(types.KindNetworks, r.ID, false) })
}
