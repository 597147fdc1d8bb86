// Package command runs external programs for prompt modules.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single command when no timeout is configured.
const DefaultTimeout = 500 * time.Millisecond

// waitDelay caps how long output pipes are drained after the process is killed.
const waitDelay = 100 * time.Millisecond

// ErrTimeout is returned when a command does not finish in time.
var ErrTimeout = errors.New("command timed out")

// Executor runs commands.
type Executor interface {
	Exec(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// LocalExecutor runs commands on the local machine.
type LocalExecutor struct {
	Timeout time.Duration
	Logger  zerolog.Logger
}

// NewLocalExecutor creates an executor with the given per-command timeout.
func NewLocalExecutor(timeout time.Duration, logger zerolog.Logger) *LocalExecutor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LocalExecutor{Timeout: timeout, Logger: logger}
}

// Exec runs name with args and returns its captured output.
func (e *LocalExecutor) Exec(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil, fmt.Errorf("command name is required")
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started)

	e.Logger.Debug().
		Str("command", name).
		Strs("args", args).
		Dur("elapsed", elapsed).
		Err(err).
		Msg("executed command")

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%s: %w after %s", name, ErrTimeout, timeout)
		}
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%s failed: %w", name, err)
	}

	return stdout.Bytes(), stderr.Bytes(), nil
}
