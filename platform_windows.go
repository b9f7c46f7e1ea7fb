//go:build windows

package procstream

// locatorCommand is the OS lookup command used by FindExecutables.
const locatorCommand = "where"

// lineSeparator is the platform line separator used to join aggregated lines.
const lineSeparator = "\r\n"
