package docker

import (
	"slices"
	"testing"

	"github.com/moby/moby/api/types/container"
)

func TestGetStatusPriority(t *testing.T) {
	tests := []struct {
		status   string
		expected int
	}{
		{"RUNNING", 1},
		{"RESTARTING", 2},
		{"PAUSED", 3},
		{"ERROR", 4},
		{"STOPPED", 5},
		{"UNKNOWN", 6},
		{"", 6},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			result := getStatusPriority(tt.status)
			if result != tt.expected {
				t.Errorf("getStatusPriority(%q) = %d, want %d", tt.status, result, tt.expected)
			}
		})
	}
}

func TestParseContainerStatus(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		status   string
		expected string
	}{
		{"running container", "running", "Up 2 hours", "RUNNING"},
		{"paused container", "paused", "", "PAUSED"},
		{"clean exit", "exited", "Exited (0) 3 minutes ago", "STOPPED"},
		{"non-zero exit", "exited", "Exited (137) 3 minutes ago", "ERROR"},
		{"error status", "exited", "Error: exit code 1", "ERROR"},
		{"restarting container", "restarting", "", "RESTARTING"},
		{"dead container", "dead", "", "ERROR"},
		{"created container", "created", "Created", "STOPPED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseContainerStatus(tt.state, tt.status)
			if result != tt.expected {
				t.Errorf("parseContainerStatus(%q, %q) = %q, want %q",
					tt.state, tt.status, result, tt.expected)
			}
		})
	}
}

func TestFormatImageName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"short name", "nginx:latest", "nginx:latest"},
		{"exactly 40", "registry.example.com/team/service:v1.2.3", "registry.example.com/team/service:v1.2.3"},
		{"long name", "registry.example.com/some-team/some-service:2024.01.01", "registry.example.com/some-team/some-s..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatImageName(tt.input)
			if result != tt.expected {
				t.Errorf("formatImageName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatPorts(t *testing.T) {
	tests := []struct {
		name     string
		ports    []container.PortSummary
		expected []string
	}{
		{
			name:     "no ports",
			ports:    []container.PortSummary{},
			expected: nil,
		},
		{
			name: "published port",
			ports: []container.PortSummary{
				{PublicPort: 8080, PrivatePort: 80, Type: "tcp"},
			},
			expected: []string{"80:8080/tcp"},
		},
		{
			name: "sorted",
			ports: []container.PortSummary{
				{PublicPort: 8443, PrivatePort: 443, Type: "tcp"},
				{PublicPort: 8080, PrivatePort: 80, Type: "tcp"},
			},
			expected: []string{"443:8443/tcp", "80:8080/tcp"},
		},
		{
			name: "private port only",
			ports: []container.PortSummary{
				{PrivatePort: 53, Type: "udp"},
			},
			expected: []string{"53/udp"},
		},
		{
			name: "duplicates from ipv4 and ipv6 bindings",
			ports: []container.PortSummary{
				{PublicPort: 8080, PrivatePort: 80, Type: "tcp"},
				{PublicPort: 8080, PrivatePort: 80, Type: "tcp"},
			},
			expected: []string{"80:8080/tcp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatPorts(tt.ports)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("formatPorts() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestParseContainer(t *testing.T) {
	summary := container.Summary{
		ID:     "0123456789abcdef0123",
		Names:  []string{"/web"},
		Image:  "nginx:latest",
		State:  "running",
		Status: "Up 5 minutes",
		Ports: []container.PortSummary{
			{PublicPort: 8080, PrivatePort: 80, Type: "tcp"},
		},
	}

	row := parseContainer(summary)
	if row.ID != summary.ID {
		t.Errorf("ID = %q, want full id %q", row.ID, summary.ID)
	}
	if row.ShortID != "0123456789ab" {
		t.Errorf("ShortID = %q, want %q", row.ShortID, "0123456789ab")
	}
	if row.Name != "web" {
		t.Errorf("Name = %q, want %q", row.Name, "web")
	}
	if row.Status != "RUNNING" || !row.Running() {
		t.Errorf("Status = %q, Running() = %v", row.Status, row.Running())
	}
	if len(row.Ports) != 1 {
		t.Errorf("Ports = %q, want one entry", row.Ports)
	}
}

func TestParseContainerDetail(t *testing.T) {
	inspect := container.InspectResponse{
		ID:      "abc",
		Name:    "/db",
		Image:   "sha256:deadbeef",
		Created: "2024-01-01T00:00:00Z",
		State:   &container.State{Status: "running", StartedAt: "2024-01-01T00:00:01Z"},
		Config: &container.Config{
			Image:      "postgres:16",
			Cmd:        []string{"postgres", "-c", "fsync=off"},
			Entrypoint: []string{"docker-entrypoint.sh"},
			Env:        []string{"PGDATA=/data"},
			Labels:     map[string]string{"tier": "db", "app": "shop"},
		},
		HostConfig: &container.HostConfig{
			RestartPolicy: container.RestartPolicy{Name: "always"},
		},
		Mounts: []container.MountPoint{
			{Type: "volume", Name: "pgdata", Source: "/var/lib/docker/volumes/pgdata/_data", Destination: "/data"},
			{Type: "bind", Source: "/etc/app", Destination: "/config"},
		},
	}

	d := parseContainerDetail(inspect)

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"Name", d.Name, "db"},
		{"Image", d.Image, "postgres:16"},
		{"State", d.State, "running"},
		{"RestartPolicy", d.RestartPolicy, "always"},
		{"Cmd", d.Cmd, "postgres -c fsync=off"},
		{"Entrypoint", d.Entrypoint, "docker-entrypoint.sh"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}

	if want := []string{"app=shop", "tier=db"}; !slices.Equal(d.Labels, want) {
		t.Errorf("Labels = %q, want %q", d.Labels, want)
	}
	if want := []string{"/etc/app -> /config", "pgdata -> /data"}; !slices.Equal(d.Mounts, want) {
		t.Errorf("Mounts = %q, want %q", d.Mounts, want)
	}
}
