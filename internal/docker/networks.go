package docker

import (
	"context"
	"sort"
	"strings"

	"github.com/moby/moby/api/types/container"
	"github.com/moby/moby/api/types/network"
	"github.com/moby/moby/client"
	"tinyd/internal/types"
)

// ListNetworks retrieves all networks sorted by name
func (c *Client) ListNetworks(ctx context.Context) ([]types.NetworkRow, error) {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	// Get all containers to determine which networks are in use
	containersResult, err := c.cli.ContainerList(ctx, client.ContainerListOptions{All: true})
	if err != nil {
		return nil, wrapError("list", "containers", c.defaultTimeout, err)
	}

	result, err := c.cli.NetworkList(ctx, client.NetworkListOptions{})
	if err != nil {
		return nil, wrapError("list", "networks", c.defaultTimeout, err)
	}

	return parseNetworks(result.Items, networksInUse(containersResult.Items)), nil
}

// RemoveNetwork removes a network
func (c *Client) RemoveNetwork(ctx context.Context, networkID string) error {
	ctx, cancel := c.WithTimeout(ctx)
	defer cancel()

	if _, err := c.cli.NetworkRemove(ctx, networkID, client.NetworkRemoveOptions{}); err != nil {
		return wrapError("remove", "network", c.defaultTimeout, err)
	}
	return nil
}

// Helper functions

// networksInUse collects the names and IDs of networks with attached containers
func networksInUse(containers []container.Summary) map[string]bool {
	inUse := make(map[string]bool)
	for _, ctr := range containers {
		if ctr.NetworkSettings == nil {
			continue
		}
		for name, endpoint := range ctr.NetworkSettings.Networks {
			inUse[name] = true
			if endpoint != nil && endpoint.NetworkID != "" {
				inUse[endpoint.NetworkID] = true
			}
		}
	}
	return inUse
}

func parseNetworks(items []network.Summary, inUse map[string]bool) []types.NetworkRow {
	rows := make([]types.NetworkRow, 0, len(items))
	for _, net := range items {
		row := parseNetwork(net)
		row.InUse = inUse[net.Name] || inUse[net.ID]
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})
	return rows
}

func parseNetwork(net network.Summary) types.NetworkRow {
	// Extract IPv4 and IPv6 subnets
	ipv4 := "--"
	ipv6 := "--"
	for _, config := range net.IPAM.Config {
		subnet := config.Subnet.String()
		if subnet == "" || subnet == "invalid Prefix" {
			continue
		}
		if strings.Contains(subnet, ":") {
			if ipv6 == "--" {
				ipv6 = subnet
			}
		} else if ipv4 == "--" {
			ipv4 = subnet
		}
	}

	return types.NetworkRow{
		ID:      net.ID,
		ShortID: shortID(net.ID),
		Name:    net.Name,
		Driver:  net.Driver,
		Scope:   net.Scope,
		IPv4:    ipv4,
		IPv6:    ipv6,
	}
}
