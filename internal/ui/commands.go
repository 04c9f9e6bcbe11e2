package ui

import (
	"context"
	"fmt"
	"log/slog"

	"tinyd/internal/types"
)

// refreshList fetches one resource listing. The result is only applied while
// that list is on screen; a failed fetch keeps the previous rows.
func (a *App) refreshList(ctx context.Context, kind types.ResourceKind) {
	if !a.screen.ShowsList(kind) {
		slog.Debug("discarding refresh for hidden list", "kind", kind, "screen", a.screen)
		return
	}

	var err error
	switch kind {
	case types.KindContainers:
		var rows []types.ContainerRow
		if rows, err = a.daemon.ListContainers(ctx); err == nil {
			a.containers.ApplyRefresh(rows)
		}
	case types.KindImages:
		var rows []types.ImageRow
		if rows, err = a.daemon.ListImages(ctx); err == nil {
			a.images.ApplyRefresh(rows)
		}
	case types.KindVolumes:
		var rows []types.VolumeRow
		if rows, err = a.daemon.ListVolumes(ctx); err == nil {
			a.volumes.ApplyRefresh(rows)
		}
	case types.KindNetworks:
		var rows []types.NetworkRow
		if rows, err = a.daemon.ListNetworks(ctx); err == nil {
			a.networks.ApplyRefresh(rows)
		}
	default:
		err = fmt.Errorf("unknown resource kind %d", kind)
	}
	if err != nil {
		slog.Warn("refresh failed", "kind", kind, "error", err)
	}
}

// refreshDetail inspects the container on the detail screen. Requests for any
// other container are stale and dropped.
func (a *App) refreshDetail(ctx context.Context, id string) {
	if !a.screen.ShowsDetail(id) {
		slog.Debug("discarding refresh for hidden detail", "id", id, "screen", a.screen)
		return
	}
	detail, err := a.daemon.InspectContainer(ctx, id)
	if err != nil {
		slog.Warn("refresh failed", "id", id, "error", err)
		return
	}
	a.detail.ApplyRefresh(detail)
}

// runPending issues the daemon call for the pending operation
func (a *App) runPending(ctx context.Context) error {
	id := a.pending.ID
	switch a.pending.Verb {
	case types.VerbRestart:
		return a.daemon.RestartContainer(ctx, id)
	case types.VerbStop:
		return a.daemon.StopContainer(ctx, id)
	case types.VerbKill:
		return a.daemon.KillContainer(ctx, id)
	case types.VerbRemove:
		return a.daemon.RemoveContainer(ctx, id, true)
	default:
		return fmt.Errorf("unsupported pending operation %s", a.pending)
	}
}

// removeResource removes an image, volume or network once. A failure becomes
// the error banner of that kind's list.
func (a *App) removeResource(ctx context.Context, cmd types.AppCommand) {
	var err error
	switch cmd.Kind {
	case types.KindImages:
		err = a.daemon.RemoveImage(ctx, cmd.ID, cmd.Force)
	case types.KindVolumes:
		err = a.daemon.RemoveVolume(ctx, cmd.ID, cmd.Force)
	case types.KindNetworks:
		err = a.daemon.RemoveNetwork(ctx, cmd.ID)
	default:
		err = fmt.Errorf("cannot remove %s", cmd.Kind)
	}

	if err != nil {
		slog.Warn("remove failed", "kind", cmd.Kind, "id", cmd.ID, "error", err)
		if l, ok := a.lists[cmd.Kind]; ok {
			l.ShowError(err.Error())
		}
		return
	}
	slog.Info("removed", "kind", cmd.Kind, "id", cmd.ID)
	a.events.Send(types.RefreshList(cmd.Kind))
}
