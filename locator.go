package procstream

import (
	"context"
	"os/exec"
	"strings"
)

// FindExecutables locates executables named name on the current system by
// shelling out to the OS lookup command ("where" on Windows, "which"
// elsewhere) and collecting the paths it prints, capped at max results.
//
// Failures are swallowed by design at this boundary: a lookup command that
// cannot start, exits non-zero, or whose output cannot be read yields an
// empty result instead of an error. "Not found" and "error probing" are
// deliberately conflated into "no paths". Failures are logged at debug
// level for diagnosis.
//
// An empty name or a non-positive max is caller misuse; it also yields an
// empty result, logged at warn level so it does not pass silently.
func FindExecutables(ctx context.Context, name string, max int) []string {
	if name == "" || max <= 0 {
		logger().Warn("executable lookup skipped",
			"name", name, "max", max)
		return nil
	}

	out, err := CaptureOutput(exec.CommandContext(ctx, locatorCommand, name))
	if err != nil {
		logger().Debug("executable lookup failed",
			"command", locatorCommand, "name", name, "error", err)
		return nil
	}

	var paths []string
	for _, line := range strings.Split(out, lineSeparator) {
		if line == "" {
			continue
		}
		paths = append(paths, line)
		if len(paths) == max {
			break
		}
	}
	return paths
}

// FindExecutable returns the first path found for name, or "" when there is
// none (or the lookup failed; see FindExecutables).
func FindExecutable(ctx context.Context, name string) string {
	paths := FindExecutables(ctx, name, 1)
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// ExecutableExists reports whether at least one executable named name can be
// located on the current system.
func ExecutableExists(ctx context.Context, name string) bool {
	return len(FindExecutables(ctx, name, 1)) > 0
}
