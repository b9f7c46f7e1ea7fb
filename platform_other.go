//go:build !windows

package procstream

// locatorCommand is the OS lookup command used by FindExecutables.
const locatorCommand = "which"

// lineSeparator is the platform line separator used to join aggregated lines.
const lineSeparator = "\n"
