// Package docker provides Docker API operations with timeout management and error handling.
package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/moby/moby/client"
)

// Operation timeout defaults
const (
	DefaultTimeout     = 15 * time.Second
	DefaultStopTimeout = 10 // seconds granted to a container before it is killed
)

// Options configures the daemon connection
type Options struct {
	Host        string        // empty uses DOCKER_HOST or the default socket
	Timeout     time.Duration // per call; zero disables
	StopTimeout int           // seconds for stop and restart
}

// Client wraps the Docker client with tinyd-specific operations and timeout management
type Client struct {
	cli            *client.Client
	defaultTimeout time.Duration
	stopTimeout    int
}

// NewClient creates a new Docker client wrapper
func NewClient(opts Options) (*Client, error) {
	clientOpts := []client.Opt{
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	}
	if opts.Host != "" {
		clientOpts = append(clientOpts, client.WithHost(opts.Host))
	}

	cli, err := client.NewClientWithOpts(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	stopTimeout := opts.StopTimeout
	if stopTimeout <= 0 {
		stopTimeout = DefaultStopTimeout
	}
	return &Client{
		cli:            cli,
		defaultTimeout: opts.Timeout,
		stopTimeout:    stopTimeout,
	}, nil
}

// Close closes the underlying Docker client
func (c *Client) Close() error {
	if c.cli != nil {
		return c.cli.Close()
	}
	return nil
}

// Host returns the daemon address the client talks to
func (c *Client) Host() string {
	if c.cli == nil {
		return ""
	}
	return c.cli.DaemonHost()
}

// WithTimeout derives a context bounded by the default timeout. A zero
// timeout leaves the parent's deadline alone.
func (c *Client) WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if c.defaultTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, c.defaultTimeout)
}
