// Package runner executes external commands with captured output.
//
// It is the single place the module spawns processes: the test harness, the
// scaffolder and the CLIs all route through it. Invocations are argv
// vectors, never shell strings, so arguments need no quoting or escaping.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds an invocation when the caller supplies no explicit
// timeout or context deadline.
const DefaultTimeout = 5 * time.Minute

// Invocation describes one external command execution.
type Invocation struct {
	// Path is the program to run, absolute or resolvable via PATH.
	Path string

	// Args are the program arguments, excluding the program name.
	Args []string

	// Dir is the working directory. Empty means the caller's.
	Dir string

	// Env contains extra environment variables merged over the current
	// process environment. A value here wins over an inherited one.
	Env map[string]string
}

// Result contains the output from a command execution. It is immutable once
// produced.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int

	// Err is non-nil when the command could not be started or was killed
	// by the context; a plain non-zero exit is reported through ExitCode
	// alone.
	Err error
}

// Success returns true if the command completed with exit code 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// Run executes the invocation with the default timeout.
func Run(inv Invocation) *Result {
	return RunWithTimeout(inv, DefaultTimeout)
}

// RunWithTimeout executes the invocation, killing the process once the
// timeout elapses.
func RunWithTimeout(inv Invocation, timeout time.Duration) *Result {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return RunWithContext(ctx, inv)
}

// RunWithContext executes the invocation under the given context. The call
// blocks until the process exits or the context is done.
func RunWithContext(ctx context.Context, inv Invocation) *Result {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = mergedEnv(inv.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.Err = err
			result.ExitCode = -1
		}
	}

	return result
}

// ExecInvocation picks the launch vector for a build-output executable:
// portable outputs are routed through the host binary's generic exec entry
// point with the executable path as a discrete argv element, self-contained
// outputs run directly.
func ExecInvocation(hostPath, executablePath string, portable bool) Invocation {
	if portable {
		return Invocation{
			Path: hostPath,
			Args: []string{"exec", executablePath},
		}
	}
	return Invocation{Path: executablePath}
}

// mergedEnv builds the environment slice for command execution: the current
// process environment with the invocation's variables layered on top.
func mergedEnv(extra map[string]string) []string {
	if len(extra) == 0 {
		return os.Environ()
	}

	env := []string{}
	for _, e := range os.Environ() {
		key, _, ok := strings.Cut(e, "=")
		if ok {
			if _, overridden := extra[key]; overridden {
				continue
			}
		}
		env = append(env, e)
	}
	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}
