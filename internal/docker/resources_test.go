package docker

import (
	"slices"
	"testing"
	"time"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/image"
	"github.com/moby/moby/api/types/volume"
)

func TestParseImages(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []image.Summary{
		{
			ID:       "sha256:1111111111111111aaaa",
			RepoTags: []string{"app:old"},
			Created:  now.Add(-48 * time.Hour).Unix(),
			Size:     1000,
		},
		{
			ID:          "sha256:2222222222222222bbbb",
			RepoDigests: []string{"busybox@sha256:ffff"},
			Created:     now.Add(-time.Hour).Unix(),
			Containers:  -1,
		},
		{
			ID:       "sha256:3333333333333333cccc",
			RepoTags: []string{"app:new", "app:latest"},
			Created:  now.Add(-10 * time.Minute).Unix(),
		},
	}

	containers := []container.Summary{
		{Names: []string{"/web"}, ImageID: "sha256:2222222222222222bbbb"},
	}

	rows := parseImages(items, imagesInUse(containers), now)

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ShortID
	}
	if want := []string{"333333333333", "222222222222", "111111111111"}; !slices.Equal(ids, want) {
		t.Errorf("order = %q, want newest first %q", ids, want)
	}

	if rows[0].ID != "3333333333333333cccc" {
		t.Errorf("ID = %q, want sha256 prefix stripped", rows[0].ID)
	}
	if !slices.Equal(rows[0].Tags, []string{"app:new", "app:latest"}) {
		t.Errorf("Tags = %q", rows[0].Tags)
	}
	if !rows[1].Dangling || !slices.Equal(rows[1].Tags, []string{"busybox:<none>"}) {
		t.Errorf("dangling row = %+v", rows[1])
	}
	if !rows[1].InUse {
		t.Error("image with containers not marked in use")
	}
	if rows[0].InUse || rows[2].InUse {
		t.Error("image without containers marked in use")
	}
	if rows[1].Created != "About an hour ago" {
		t.Errorf("Created = %q, want %q", rows[1].Created, "About an hour ago")
	}
	if rows[2].Size != "1kB" {
		t.Errorf("Size = %q, want %q", rows[2].Size, "1kB")
	}
}

func TestParseImageContainerCount(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		containers int64
		used       bool
		want       bool
	}{
		{"count not computed", -1, false, false},
		{"count not computed, container found", -1, true, true},
		{"count computed", 3, false, true},
		{"count zero", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := parseImage(image.Summary{ID: "sha256:abc", Containers: tt.containers}, tt.used, now)
			if row.InUse != tt.want {
				t.Errorf("InUse = %v, want %v", row.InUse, tt.want)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "unknown"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"days", now.Add(-72 * time.Hour), "3 days ago"},
		{"future clock skew", now.Add(time.Minute), "Less than a second ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatTimeAgo(tt.t, now); got != tt.want {
				t.Errorf("formatTimeAgo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseVolumes(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	containers := []container.Summary{
		{
			Names:  []string{"/web"},
			Mounts: []container.MountPoint{{Type: "volume", Name: "shared"}},
		},
		{
			Names:  []string{"/api"},
			Mounts: []container.MountPoint{{Type: "volume", Name: "shared"}, {Type: "bind", Source: "/tmp"}},
		},
	}
	items := []volume.Volume{
		{Name: "alpha", Driver: "local"},
		{Name: "shared", Driver: "local", CreatedAt: now.Add(-2 * time.Hour).Format(time.RFC3339)},
	}

	rows := parseVolumes(items, volumeUsers(containers), now)

	if rows[0].Name != "shared" {
		t.Fatalf("first row = %q, want in-use volume first", rows[0].Name)
	}
	if !slices.Equal(rows[0].UsedBy, []string{"api", "web"}) {
		t.Errorf("UsedBy = %q, want sorted container names", rows[0].UsedBy)
	}
	if rows[0].Created != "2 hours ago" {
		t.Errorf("Created = %q, want %q", rows[0].Created, "2 hours ago")
	}
	if rows[1].InUse() || rows[1].Created != "unknown" {
		t.Errorf("unused row = %+v", rows[1])
	}
}
