package docker

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/image"
	"github.com/moby/moby/client"
	"tinyd/internal/types"
)

const noneTag = "<none>:<none>"

// ListImages retrieves all images, newest first
func (c *Client) ListImages(ctx context.Context) ([]types.ImageRow, error) {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	// The daemon leaves Summary.Containers at -1 unless asked, so usage
	// comes from the container list instead.
	containersResult, err := c.cli.ContainerList(ctx, client.ContainerListOptions{All: true})
	if err != nil {
		return nil, wrapError("list", "containers", c.defaultTimeout, err)
	}

	result, err := c.cli.ImageList(ctx, client.ImageListOptions{All: true})
	if err != nil {
		return nil, wrapError("list", "images", c.defaultTimeout, err)
	}
	return parseImages(result.Items, imagesInUse(containersResult.Items), time.Now()), nil
}

// RemoveImage removes an image
func (c *Client) RemoveImage(ctx context.Context, imageID string, force bool) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	_, err := c.cli.ImageRemove(ctx, imageID, client.ImageRemoveOptions{
		Force:         force,
		PruneChildren: true,
	})
	if err != nil {
		return wrapError("remove", "image", c.defaultTimeout, err)
	}
	return nil
}

// Helper functions

// imagesInUse collects the IDs of images any container was created from
func imagesInUse(containers []container.Summary) map[string]bool {
	inUse := make(map[string]bool)
	for _, ctr := range containers {
		if ctr.ImageID != "" {
			inUse[ctr.ImageID] = true
		}
	}
	return inUse
}

func parseImages(items []image.Summary, inUse map[string]bool, now time.Time) []types.ImageRow {
	sorted := make([]image.Summary, len(items))
	copy(sorted, items)
	// Newest first
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Created > sorted[j].Created
	})

	rows := make([]types.ImageRow, 0, len(sorted))
	for _, img := range sorted {
		rows = append(rows, parseImage(img, inUse[img.ID], now))
	}
	return rows
}

func parseImage(img image.Summary, used bool, now time.Time) types.ImageRow {
	tags := make([]string, 0, len(img.RepoTags))
	for _, tag := range img.RepoTags {
		if tag != noneTag {
			tags = append(tags, tag)
		}
	}
	dangling := len(tags) == 0
	if dangling {
		repo := "<none>"
		if len(img.RepoDigests) > 0 {
			repo, _, _ = strings.Cut(img.RepoDigests[0], "@")
		}
		tags = append(tags, repo+":<none>")
	}

	id := strings.TrimPrefix(img.ID, "sha256:")
	return types.ImageRow{
		ID:       id,
		ShortID:  shortID(id),
		Tags:     tags,
		Size:     units.HumanSize(float64(img.Size)),
		Created:  formatTimeAgo(time.Unix(img.Created, 0), now),
		InUse:    used || img.Containers > 0,
		Dangling: dangling,
	}
}

func formatTimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	return units.HumanDuration(d) + " ago"
}
