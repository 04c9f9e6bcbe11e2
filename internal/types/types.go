// Package types contains all data structures and constants used throughout tinyd.
package types

import "fmt"

// ResourceKind identifies one of the daemon resource tabs
type ResourceKind int

const (
	KindContainers ResourceKind = iota
	KindImages
	KindVolumes
	KindNetworks
)

// ResourceKinds lists the tabs in display order
var ResourceKinds = []ResourceKind{KindContainers, KindImages, KindVolumes, KindNetworks}

func (k ResourceKind) String() string {
	switch k {
	case KindContainers:
		return "containers"
	case KindImages:
		return "images"
	case KindVolumes:
		return "volumes"
	case KindNetworks:
		return "networks"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Title returns the tab label
func (k ResourceKind) Title() string {
	switch k {
	case KindContainers:
		return "Containers"
	case KindImages:
		return "Images"
	case KindVolumes:
		return "Volumes"
	case KindNetworks:
		return "Networks"
	default:
		return k.String()
	}
}

// ParseResourceKind maps a config or flag value to a kind
func ParseResourceKind(s string) (ResourceKind, error) {
	for _, k := range ResourceKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q", s)
}

// Key is a key press as reported by the terminal, e.g. "enter", "ctrl+c", "q"
type Key string

func (k Key) String() string { return string(k) }

// EventKind tags an Event
type EventKind int

const (
	EventTick EventKind = iota
	EventInput
	EventResize
	EventCommand
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventInput:
		return "input"
	case EventResize:
		return "resize"
	case EventCommand:
		return "command"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one item of the multiplexed stream consumed by the controller
type Event struct {
	Kind    EventKind
	Key     Key        // EventInput
	Width   int        // EventResize
	Height  int        // EventResize
	Command AppCommand // EventCommand
}

// TickEvent reports one firing of the clock
func TickEvent() Event { return Event{Kind: EventTick} }

// InputEvent wraps a key press
func InputEvent(k Key) Event { return Event{Kind: EventInput, Key: k} }

// ResizeEvent reports a new terminal size
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

// CommandEvent wraps a controller-originated command
func CommandEvent(cmd AppCommand) Event { return Event{Kind: EventCommand, Command: cmd} }

// Verb names the action carried by an AppCommand
type Verb int

const (
	VerbNone Verb = iota
	VerbQuit
	VerbRefreshList
	VerbRefreshDetail
	VerbRestart
	VerbStop
	VerbKill
	VerbRemove
	VerbOpenDetail
	VerbBack
)

func (v Verb) String() string {
	switch v {
	case VerbNone:
		return "none"
	case VerbQuit:
		return "quit"
	case VerbRefreshList:
		return "refresh-list"
	case VerbRefreshDetail:
		return "refresh-detail"
	case VerbRestart:
		return "restart"
	case VerbStop:
		return "stop"
	case VerbKill:
		return "kill"
	case VerbRemove:
		return "remove"
	case VerbOpenDetail:
		return "open-detail"
	case VerbBack:
		return "back"
	default:
		return fmt.Sprintf("verb(%d)", int(v))
	}
}

// AppCommand is an immutable request emitted by a view and executed by the controller.
// Kind is meaningful for RefreshList and Remove; ID for every verb bound to a target.
type AppCommand struct {
	Verb  Verb
	Kind  ResourceKind
	ID    string
	Force bool
}

func (c AppCommand) String() string {
	switch c.Verb {
	case VerbQuit, VerbBack, VerbNone:
		return c.Verb.String()
	case VerbRefreshList:
		return fmt.Sprintf("%s(%s)", c.Verb, c.Kind)
	case VerbRemove:
		return fmt.Sprintf("%s(%s %s, force=%t)", c.Verb, c.Kind, c.ID, c.Force)
	default:
		return fmt.Sprintf("%s(%s)", c.Verb, c.ID)
	}
}

func Quit() AppCommand { return AppCommand{Verb: VerbQuit} }
func Back() AppCommand { return AppCommand{Verb: VerbBack} }

func RefreshList(kind ResourceKind) AppCommand {
	return AppCommand{Verb: VerbRefreshList, Kind: kind}
}

func RefreshDetail(id string) AppCommand {
	return AppCommand{Verb: VerbRefreshDetail, Kind: KindContainers, ID: id}
}

func OpenDetail(id string) AppCommand {
	return AppCommand{Verb: VerbOpenDetail, Kind: KindContainers, ID: id}
}

func Restart(id string) AppCommand {
	return AppCommand{Verb: VerbRestart, Kind: KindContainers, ID: id}
}

func Stop(id string) AppCommand {
	return AppCommand{Verb: VerbStop, Kind: KindContainers, ID: id}
}

func Kill(id string) AppCommand {
	return AppCommand{Verb: VerbKill, Kind: KindContainers, ID: id}
}

func Remove(kind ResourceKind, id string, force bool) AppCommand {
	return AppCommand{Verb: VerbRemove, Kind: kind, ID: id, Force: force}
}

// ScreenMode selects between the list and detail screens
type ScreenMode int

const (
	ScreenList ScreenMode = iota
	ScreenDetail
)

// Screen is the single active screen. Tab is kept while a detail is open so Back
// returns to the same list.
type Screen struct {
	Mode ScreenMode
	Tab  ResourceKind
	ID   string // ScreenDetail only
}

func ListScreen(tab ResourceKind) Screen { return Screen{Mode: ScreenList, Tab: tab} }

func DetailScreen(tab ResourceKind, id string) Screen {
	return Screen{Mode: ScreenDetail, Tab: tab, ID: id}
}

// ShowsList reports whether the list for kind is the one on screen
func (s Screen) ShowsList(kind ResourceKind) bool {
	return s.Mode == ScreenList && s.Tab == kind
}

// ShowsDetail reports whether the detail for id is the one on screen
func (s Screen) ShowsDetail(id string) bool {
	return s.Mode == ScreenDetail && s.ID == id
}

func (s Screen) String() string {
	if s.Mode == ScreenDetail {
		return fmt.Sprintf("detail(%s)", s.ID)
	}
	return fmt.Sprintf("list(%s)", s.Tab)
}

// PendingOperation is the single mutating call the controller is retrying.
// The zero value means none.
type PendingOperation struct {
	Verb Verb
	ID   string
}

// IsNone reports whether no operation is pending
func (p PendingOperation) IsNone() bool { return p.Verb == VerbNone }

func (p PendingOperation) String() string {
	if p.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s(%s)", p.Verb, p.ID)
}

// ContainerRow represents a Docker container with display data
type ContainerRow struct {
	ID      string
	ShortID string
	Name    string
	Image   string
	State   string // raw daemon state, e.g. "running"
	Status  string // RUNNING, PAUSED, ERROR, ...
	Ports   []string
}

func (r ContainerRow) RowID() string { return r.ID }

// Running reports whether the container is up
func (r ContainerRow) Running() bool { return r.State == "running" }

// ImageRow represents a Docker image
type ImageRow struct {
	ID       string
	ShortID  string
	Tags     []string
	Size     string
	Created  string
	InUse    bool // Whether the image is used by any container
	Dangling bool // Whether the image has no repository tag
}

func (r ImageRow) RowID() string { return r.ID }

// VolumeRow represents a Docker volume
type VolumeRow struct {
	Name       string
	Driver     string
	Mountpoint string
	Scope      string
	Created    string
	UsedBy     []string // container names mounting this volume
}

func (r VolumeRow) RowID() string { return r.Name }

func (r VolumeRow) InUse() bool { return len(r.UsedBy) > 0 }

// NetworkRow represents a Docker network
type NetworkRow struct {
	ID      string
	ShortID string
	Name    string
	Driver  string
	Scope   string
	IPv4    string
	IPv6    string
	InUse   bool // Whether the network has any connected containers
}

func (r NetworkRow) RowID() string { return r.ID }

// ContainerDetail holds the inspected fields shown on the detail screen
type ContainerDetail struct {
	ID            string
	Name          string
	Image         string
	Created       string
	State         string
	StartedAt     string
	RestartPolicy string
	IPAddress     string
	Cmd           string
	Entrypoint    string
	Env           []string
	Labels        []string
	Ports         []string
	Mounts        []string
	Networks      []string
}
