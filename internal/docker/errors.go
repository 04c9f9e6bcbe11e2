package docker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cerrdefs "github.com/containerd/errdefs"
)

const daemonPrefix = "Error response from daemon: "

// wrapError turns a daemon error into a short message naming the operation
// and the resource. The original error stays reachable through errors.Is.
func wrapError(op, what string, timeout time.Duration, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s operation timed out after %s: %w", op, timeout, err)
	case cerrdefs.IsNotFound(err):
		return &daemonError{msg: what + " not found", err: err}
	case cerrdefs.IsConflict(err) && op == "remove":
		return &daemonError{msg: what + " is in use", err: err}
	case cerrdefs.IsConflict(err):
		return &daemonError{msg: fmt.Sprintf("cannot %s %s: %s", op, what, daemonMessage(err)), err: err}
	default:
		return &daemonError{msg: fmt.Sprintf("failed to %s %s: %s", op, what, daemonMessage(err)), err: err}
	}
}

type daemonError struct {
	msg string
	err error
}

func (e *daemonError) Error() string { return e.msg }
func (e *daemonError) Unwrap() error { return e.err }

// daemonMessage strips the transport prefix the client adds to daemon replies
func daemonMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if i := strings.LastIndex(msg, daemonPrefix); i >= 0 {
		msg = msg[i+len(daemonPrefix):]
	}
	return msg
}
