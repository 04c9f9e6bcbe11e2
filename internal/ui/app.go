// Package ui contains the resource views, the screen controller, and the
// terminal surface for tinyd.
package ui

import (
	"context"
	"log/slog"

	"tinyd/internal/types"
)

// Daemon is the part of the docker client the controller drives
type Daemon interface {
	ListContainers(ctx context.Context) ([]types.ContainerRow, error)
	ListImages(ctx context.Context) ([]types.ImageRow, error)
	ListVolumes(ctx context.Context) ([]types.VolumeRow, error)
	ListNetworks(ctx context.Context) ([]types.NetworkRow, error)
	InspectContainer(ctx context.Context, id string) (types.ContainerDetail, error)

	RestartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
	KillContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string, force bool) error
	RemoveImage(ctx context.Context, id string, force bool) error
	RemoveVolume(ctx context.Context, name string, force bool) error
	RemoveNetwork(ctx context.Context, id string) error
}

// Events is the multiplexed event stream. Send enqueues a command without
// blocking; Next returns false once the stream has ended.
type Events interface {
	Next(ctx context.Context) (types.Event, bool)
	Send(cmd types.AppCommand)
}

// Surface receives one complete frame per control loop iteration
type Surface interface {
	Render(frame string)
}

// view is the capability shared by every screen
type view interface {
	HandleInput(k types.Key) (types.AppCommand, bool)
	Tick() (types.AppCommand, bool)
	Draw(width, height int) string
}

// listView is a resource list seen independently of its row type
type listView interface {
	view
	Kind() types.ResourceKind
	ShowError(msg string)
	Banner() string
}

// Options configures the controller
type Options struct {
	Version            string
	Host               string
	StartTab           types.ResourceKind
	RunningOnly        bool
	RefreshTicks       int
	DetailRefreshTicks int
}

// App is the screen and operation controller. All of its state is owned by
// the goroutine running Run.
type App struct {
	daemon Daemon
	events Events
	opts   Options

	screen  types.Screen
	pending types.PendingOperation

	containers *ResourceList[types.ContainerRow]
	images     *ResourceList[types.ImageRow]
	volumes    *ResourceList[types.VolumeRow]
	networks   *ResourceList[types.NetworkRow]
	lists      map[types.ResourceKind]listView
	detail     *DetailView

	tabKeys TabKeyMap
	width   int
	height  int
}

// NewApp builds the controller on the start tab with every list empty
func NewApp(daemon Daemon, events Events, opts Options) *App {
	if opts.RefreshTicks <= 0 {
		opts.RefreshTicks = DefaultRefreshTicks
	}
	if opts.DetailRefreshTicks <= 0 {
		opts.DetailRefreshTicks = DefaultRefreshTicks
	}

	a := &App{
		daemon:     daemon,
		events:     events,
		opts:       opts,
		screen:     types.ListScreen(opts.StartTab),
		containers: NewContainerList(),
		images:     NewImageList(),
		volumes:    NewVolumeList(),
		networks:   NewNetworkList(),
		detail:     NewDetailView(),
		tabKeys:    DefaultTabKeyMap(),
		width:      80,
		height:     24,
	}
	a.lists = map[types.ResourceKind]listView{
		types.KindContainers: a.containers,
		types.KindImages:     a.images,
		types.KindVolumes:    a.volumes,
		types.KindNetworks:   a.networks,
	}
	for _, l := range []interface{ SetRefreshEvery(int) }{a.containers, a.images, a.volumes, a.networks} {
		l.SetRefreshEvery(opts.RefreshTicks)
	}
	a.detail.SetRefreshEvery(opts.DetailRefreshTicks)
	a.containers.SetShowAll(!opts.RunningOnly)
	return a
}

// Screen returns the active screen
func (a *App) Screen() types.Screen { return a.screen }

// Pending returns the operation being retried, if any
func (a *App) Pending() types.PendingOperation { return a.pending }

// Run drives the control loop until Quit is handled, the event stream ends,
// or ctx is cancelled. A frame is rendered after every event.
func (a *App) Run(ctx context.Context, surface Surface) error {
	a.events.Send(types.RefreshList(a.screen.Tab))
	surface.Render(a.View())

	for {
		ev, ok := a.events.Next(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			slog.Info("event stream ended")
			return nil
		}
		if a.step(ctx, ev) {
			slog.Info("quit requested", "pending", a.pending)
			return nil
		}
		surface.Render(a.View())
	}
}

// step is one control loop iteration: handle the event, then retry the
// pending operation. It reports whether the loop must end.
func (a *App) step(ctx context.Context, ev types.Event) bool {
	if a.handle(ctx, ev) {
		return true
	}
	a.retryPending(ctx)
	return false
}

func (a *App) active() view {
	if a.screen.Mode == types.ScreenDetail {
		return a.detail
	}
	return a.lists[a.screen.Tab]
}
