package docker

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/client"
	"tinyd/internal/types"
)

// ListContainers retrieves all containers, running ones first
func (c *Client) ListContainers(ctx context.Context) ([]types.ContainerRow, error) {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	// List all containers (including stopped ones)
	result, err := c.cli.ContainerList(ctx, client.ContainerListOptions{All: true})
	if err != nil {
		return nil, wrapError("list", "containers", c.defaultTimeout, err)
	}

	rows := make([]types.ContainerRow, 0, len(result.Items))
	for _, summary := range result.Items {
		rows = append(rows, parseContainer(summary))
	}

	// Sort containers by status priority: RUNNING > RESTARTING > PAUSED > ERROR > STOPPED
	sort.SliceStable(rows, func(i, j int) bool {
		return getStatusPriority(rows[i].Status) < getStatusPriority(rows[j].Status)
	})

	return rows, nil
}

// InspectContainer retrieves the fields shown on the detail screen
func (c *Client) InspectContainer(ctx context.Context, containerID string) (types.ContainerDetail, error) {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	result, err := c.cli.ContainerInspect(ctx, containerID, client.ContainerInspectOptions{})
	if err != nil {
		return types.ContainerDetail{}, wrapError("inspect", "container", c.defaultTimeout, err)
	}
	return parseContainerDetail(result.Container), nil
}

// StopContainer stops a container
func (c *Client) StopContainer(ctx context.Context, containerID string) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	timeout := c.stopTimeout
	if _, err := c.cli.ContainerStop(ctx, containerID, client.ContainerStopOptions{Timeout: &timeout}); err != nil {
		return wrapError("stop", "container", c.defaultTimeout, err)
	}
	return nil
}

// RestartContainer restarts a container
func (c *Client) RestartContainer(ctx context.Context, containerID string) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	timeout := c.stopTimeout
	if _, err := c.cli.ContainerRestart(ctx, containerID, client.ContainerRestartOptions{Timeout: &timeout}); err != nil {
		return wrapError("restart", "container", c.defaultTimeout, err)
	}
	return nil
}

// KillContainer sends SIGKILL to a container
func (c *Client) KillContainer(ctx context.Context, containerID string) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	if _, err := c.cli.ContainerKill(ctx, containerID, client.ContainerKillOptions{Signal: "SIGKILL"}); err != nil {
		return wrapError("kill", "container", c.defaultTimeout, err)
	}
	return nil
}

// RemoveContainer removes a container, keeping its anonymous volumes
func (c *Client) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	_, err := c.cli.ContainerRemove(ctx, containerID, client.ContainerRemoveOptions{
		Force:         force,
		RemoveVolumes: false,
	})
	if err != nil {
		return wrapError("remove", "container", c.defaultTimeout, err)
	}
	return nil
}

// Helper functions

// parseContainer converts a Docker API container to our display type
func parseContainer(summary container.Summary) types.ContainerRow {
	name := "unknown"
	if len(summary.Names) > 0 {
		name = strings.TrimPrefix(summary.Names[0], "/")
	}

	return types.ContainerRow{
		ID:      summary.ID,
		ShortID: shortID(summary.ID),
		Name:    name,
		Image:   formatImageName(summary.Image),
		State:   string(summary.State),
		Status:  parseContainerStatus(string(summary.State), summary.Status),
		Ports:   formatPorts(summary.Ports),
	}
}

func shortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func parseContainerStatus(state, status string) string {
	switch state {
	case "running":
		return "RUNNING"
	case "paused":
		return "PAUSED"
	case "restarting":
		return "RESTARTING"
	case "dead":
		return "ERROR"
	case "exited":
		lower := strings.ToLower(status)
		if strings.Contains(lower, "error") {
			return "ERROR"
		}
		// Non-zero exit codes look like "Exited (1) 2 minutes ago"
		if strings.Contains(status, "Exited (") && !strings.Contains(status, "Exited (0)") {
			return "ERROR"
		}
	}
	return "STOPPED"
}

func formatImageName(img string) string {
	if len(img) > 40 {
		img = img[:37] + "..."
	}
	return img
}

// formatPorts renders one "private:public/type" entry per published port,
// sorted and without duplicates.
func formatPorts(ports []container.PortSummary) []string {
	if len(ports) == 0 {
		return nil
	}

	out := make([]string, 0, len(ports))
	for _, port := range ports {
		if port.PublicPort > 0 {
			out = append(out, fmt.Sprintf("%d:%d/%s", port.PrivatePort, port.PublicPort, port.Type))
		} else {
			out = append(out, fmt.Sprintf("%d/%s", port.PrivatePort, port.Type))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func getStatusPriority(status string) int {
	switch status {
	case "RUNNING":
		return 1
	case "RESTARTING":
		return 2
	case "PAUSED":
		return 3
	case "ERROR":
		return 4
	case "STOPPED":
		return 5
	default:
		return 6
	}
}

func parseContainerDetail(inspect container.InspectResponse) types.ContainerDetail {
	d := types.ContainerDetail{
		ID:      inspect.ID,
		Name:    strings.TrimPrefix(inspect.Name, "/"),
		Image:   inspect.Image,
		Created: inspect.Created,
	}

	if inspect.State != nil {
		d.State = string(inspect.State.Status)
		d.StartedAt = inspect.State.StartedAt
	}
	if inspect.HostConfig != nil {
		d.RestartPolicy = string(inspect.HostConfig.RestartPolicy.Name)
	}
	if inspect.Config != nil {
		if inspect.Config.Image != "" {
			d.Image = inspect.Config.Image
		}
		d.Cmd = strings.Join(inspect.Config.Cmd, " ")
		d.Entrypoint = strings.Join(inspect.Config.Entrypoint, " ")
		d.Env = slices.Clone(inspect.Config.Env)
		for k, v := range inspect.Config.Labels {
			d.Labels = append(d.Labels, k+"="+v)
		}
		slices.Sort(d.Labels)
	}

	if inspect.NetworkSettings != nil {
		for name, endpoint := range inspect.NetworkSettings.Networks {
			if endpoint == nil {
				continue
			}
			ip := addrString(endpoint.IPAddress)
			if d.IPAddress == "" {
				d.IPAddress = ip
			}
			d.Networks = append(d.Networks, fmt.Sprintf("%s: %s", name, orDash(ip)))
		}
		slices.Sort(d.Networks)

		for port, bindings := range inspect.NetworkSettings.Ports {
			if len(bindings) == 0 {
				d.Ports = append(d.Ports, fmt.Sprintf("%s (not published)", port))
				continue
			}
			for _, b := range bindings {
				host := addrString(b.HostIP)
				if host == "" {
					host = "0.0.0.0"
				}
				d.Ports = append(d.Ports, fmt.Sprintf("%s:%s -> %s", host, b.HostPort, port))
			}
		}
		slices.Sort(d.Ports)
	}

	for _, m := range inspect.Mounts {
		src := m.Source
		if m.Name != "" {
			src = m.Name
		}
		d.Mounts = append(d.Mounts, fmt.Sprintf("%s -> %s", src, m.Destination))
	}
	slices.Sort(d.Mounts)

	return d
}

// addrString formats an address field, mapping unset values to ""
func addrString(v any) string {
	s := fmt.Sprint(v)
	if s == "invalid IP" || s == "<nil>" {
		return ""
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
