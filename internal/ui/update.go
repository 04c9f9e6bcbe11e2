package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"

	"tinyd/internal/types"
)

// handle applies one event and reports whether the loop must end
func (a *App) handle(ctx context.Context, ev types.Event) bool {
	switch ev.Kind {
	case types.EventTick:
		if cmd, ok := a.active().Tick(); ok {
			return a.dispatch(ctx, cmd)
		}

	case types.EventResize:
		a.width = max(ev.Width, 1)
		a.height = max(ev.Height, 1)

	case types.EventInput:
		if a.switchTab(ev.Key) {
			return false
		}
		if cmd, ok := a.active().HandleInput(ev.Key); ok {
			return a.dispatch(ctx, cmd)
		}

	case types.EventCommand:
		return a.dispatch(ctx, ev.Command)
	}
	return false
}

// switchTab handles the tab keys of the list screen. A list showing an error
// banner gets the key instead so it can dismiss the banner.
func (a *App) switchTab(k types.Key) bool {
	if a.screen.Mode != types.ScreenList || a.lists[a.screen.Tab].Banner() != "" {
		return false
	}

	n := len(types.ResourceKinds)
	tab := int(a.screen.Tab)
	switch {
	case key.Matches(k, a.tabKeys.NextTab):
		tab = (tab + 1) % n
	case key.Matches(k, a.tabKeys.PrevTab):
		tab = (tab + n - 1) % n
	default:
		found := false
		for i, b := range a.tabKeys.Jump {
			if key.Matches(k, b) {
				tab, found = i, true
				break
			}
		}
		if !found {
			return false
		}
	}

	kind := types.ResourceKinds[tab]
	if kind != a.screen.Tab {
		a.screen = types.ListScreen(kind)
		a.events.Send(types.RefreshList(kind))
	}
	return true
}

// dispatch executes a command and reports whether it was Quit
func (a *App) dispatch(ctx context.Context, cmd types.AppCommand) bool {
	switch cmd.Verb {
	case types.VerbQuit:
		return true

	case types.VerbBack:
		if a.screen.Mode == types.ScreenDetail {
			a.screen = types.ListScreen(a.screen.Tab)
		}

	case types.VerbRefreshList:
		a.refreshList(ctx, cmd.Kind)

	case types.VerbRefreshDetail:
		a.refreshDetail(ctx, cmd.ID)

	case types.VerbOpenDetail:
		if !a.pending.IsNone() {
			slog.Debug("open ignored while an operation is pending", "pending", a.pending)
			return false
		}
		a.screen = types.DetailScreen(a.screen.Tab, cmd.ID)
		a.detail.Open(cmd.ID)
		a.events.Send(types.RefreshDetail(cmd.ID))

	case types.VerbRestart, types.VerbStop, types.VerbKill, types.VerbRemove:
		if !a.pending.IsNone() {
			slog.Debug("command ignored while an operation is pending", "command", cmd, "pending", a.pending)
			return false
		}
		if cmd.Verb == types.VerbRemove && cmd.Kind != types.KindContainers {
			a.removeResource(ctx, cmd)
			return false
		}
		a.pending = types.PendingOperation{Verb: cmd.Verb, ID: cmd.ID}
		slog.Info("operation started", "op", a.pending)
		if cmd.Verb == types.VerbRemove {
			a.screen = types.ListScreen(a.screen.Tab)
		}
	}
	return false
}

// retryPending attempts the pending operation once. A failure leaves it in
// place so the same call runs again on the next iteration.
// TODO: surface a "still retrying" indicator and add backoff; retries are unbounded.
func (a *App) retryPending(ctx context.Context) {
	if a.pending.IsNone() {
		return
	}
	if err := a.runPending(ctx); err != nil {
		slog.Debug("operation failed, will retry", "op", a.pending, "error", err)
		return
	}
	slog.Info("operation completed", "op", a.pending)
	a.pending = types.PendingOperation{}

	if a.screen.Mode == types.ScreenDetail {
		a.events.Send(types.RefreshDetail(a.screen.ID))
	} else {
		a.events.Send(types.RefreshList(a.screen.Tab))
	}
}
