package docker

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/volume"
	"github.com/moby/moby/client"
	"tinyd/internal/types"
)

// ListVolumes retrieves all volumes with the containers mounting them
func (c *Client) ListVolumes(ctx context.Context) ([]types.VolumeRow, error) {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	// First, get all containers to determine which volumes are in use
	containersResult, err := c.cli.ContainerList(ctx, client.ContainerListOptions{All: true})
	if err != nil {
		return nil, wrapError("list", "containers", c.defaultTimeout, err)
	}

	result, err := c.cli.VolumeList(ctx, client.VolumeListOptions{})
	if err != nil {
		return nil, wrapError("list", "volumes", c.defaultTimeout, err)
	}

	return parseVolumes(result.Items, volumeUsers(containersResult.Items), time.Now()), nil
}

// RemoveVolume removes a volume
func (c *Client) RemoveVolume(ctx context.Context, volumeName string, force bool) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	if _, err := c.cli.VolumeRemove(ctx, volumeName, client.VolumeRemoveOptions{Force: force}); err != nil {
		return wrapError("remove", "volume", c.defaultTimeout, err)
	}
	return nil
}

// Helper functions

// volumeUsers maps volume names to the names of containers mounting them
func volumeUsers(containers []container.Summary) map[string][]string {
	users := make(map[string][]string)
	for _, ctr := range containers {
		if len(ctr.Names) == 0 {
			continue
		}
		name := strings.TrimPrefix(ctr.Names[0], "/")
		for _, mount := range ctr.Mounts {
			if mount.Type == "volume" && mount.Name != "" {
				users[mount.Name] = append(users[mount.Name], name)
			}
		}
	}
	return users
}

func parseVolumes(items []volume.Volume, users map[string][]string, now time.Time) []types.VolumeRow {
	rows := make([]types.VolumeRow, 0, len(items))
	for _, vol := range items {
		rows = append(rows, parseVolume(vol, users[vol.Name], now))
	}

	// In use first, then by name
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].InUse() != rows[j].InUse() {
			return rows[i].InUse()
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

func parseVolume(vol volume.Volume, usedBy []string, now time.Time) types.VolumeRow {
	mountpoint := vol.Mountpoint
	if len(mountpoint) > 40 {
		mountpoint = "..." + mountpoint[len(mountpoint)-37:]
	}

	created := "unknown"
	if vol.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, vol.CreatedAt); err == nil {
			created = formatTimeAgo(t, now)
		}
	}

	var names []string
	if len(usedBy) > 0 {
		names = append(names, usedBy...)
		sort.Strings(names)
	}

	return types.VolumeRow{
		Name:       vol.Name,
		Driver:     vol.Driver,
		Mountpoint: mountpoint,
		Scope:      vol.Scope,
		Created:    created,
		UsedBy:     names,
	}
}
