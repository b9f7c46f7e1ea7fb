package procstream

import (
	"fmt"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// DrainAll drains every handler concurrently, one goroutine per handler, and
// blocks until all of them finish. It returns the first error encountered;
// the remaining handlers still run to completion so no stream is left with
// an unblocked producer.
//
// Attaching one handler per output stream of a process and draining them
// together is what prevents pipe backpressure deadlock: neither stream can
// stall the other.
func DrainAll(handlers ...Consumer) error {
	var g errgroup.Group
	for _, h := range handlers {
		g.Go(h.Consume)
	}
	return g.Wait()
}

// CaptureOutput starts cmd, aggregates its standard output, discards its
// standard error, waits for it to exit, and returns the aggregated stdout.
// Both streams are drained concurrently, so the command never blocks on a
// full pipe buffer regardless of how much it writes to either stream.
//
// The command must not be started and must not have Stdout or Stderr set.
// A non-zero exit is returned as the *exec.ExitError from cmd.Wait, wrapped;
// stdout aggregated before the failure is discarded.
func CaptureOutput(cmd *exec.Cmd, opts ...Option) (string, error) {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("stderr pipe: %w", err)
	}

	agg, err := NewLineAggregator(stdout, opts...)
	if err != nil {
		return "", err
	}
	disc, err := NewDiscard(stderr, opts...)
	if err != nil {
		return "", err
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	logger().Debug("capturing command output", "command", cmd.Path)

	// Both pipes must be fully drained before cmd.Wait, which closes them.
	stderrDone := ConsumeAsync(disc)
	out, procErr := agg.Process()
	drainErr := <-stderrDone

	if err := cmd.Wait(); err != nil {
		return "", fmt.Errorf("wait for %s: %w", cmd.Path, err)
	}
	if procErr != nil {
		return "", procErr
	}
	if drainErr != nil {
		return "", fmt.Errorf("drain stderr: %w", drainErr)
	}
	return out, nil
}
