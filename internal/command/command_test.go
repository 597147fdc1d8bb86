package command

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestLocalExecutor_Exec(t *testing.T) {
	requireShell(t)
	executor := NewLocalExecutor(time.Second, zerolog.Nop())

	stdout, stderr, err := executor.Exec(context.Background(), "sh", "-c", "printf 8.1.2; printf oops >&2")
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if string(stdout) != "8.1.2" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if string(stderr) != "oops" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}

func TestLocalExecutor_Failure(t *testing.T) {
	requireShell(t)
	executor := NewLocalExecutor(time.Second, zerolog.Nop())

	if _, _, err := executor.Exec(context.Background(), "sh", "-c", "exit 3"); err == nil {
		t.Fatalf("expected error for non-zero exit")
	}
}

func TestLocalExecutor_MissingBinary(t *testing.T) {
	executor := NewLocalExecutor(time.Second, zerolog.Nop())

	if _, _, err := executor.Exec(context.Background(), "shellprompt-definitely-missing"); err == nil {
		t.Fatalf("expected error for missing binary")
	}
}

func TestLocalExecutor_Timeout(t *testing.T) {
	requireShell(t)
	executor := NewLocalExecutor(50*time.Millisecond, zerolog.Nop())

	_, _, err := executor.Exec(context.Background(), "sh", "-c", "exec sleep 5")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestLocalExecutor_EmptyName(t *testing.T) {
	executor := NewLocalExecutor(0, zerolog.Nop())
	if executor.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %s", executor.Timeout)
	}
	if _, _, err := executor.Exec(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty command")
	}
}
