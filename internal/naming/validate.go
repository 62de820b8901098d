package naming

import (
	"runtime"
	"strings"
)

// windowsRules enables the reserved character and device name checks.
var windowsRules = runtime.GOOS == "windows"

var reservedDeviceNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// InvalidNameReason returns a short explanation when name cannot be used as a
// file name in the planned directory, or "" when it is acceptable.
func InvalidNameReason(name string) string {
	return invalidNameReason(name, windowsRules)
}

func invalidNameReason(name string, windows bool) string {
	if strings.TrimSpace(name) == "" {
		return "empty name"
	}
	if name == "." || name == ".." {
		return "reserved path element"
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, 0) {
		return "contains a path separator or NUL"
	}
	if !windows {
		return ""
	}

	if strings.ContainsAny(name, `<>:"\|?*`) {
		return "invalid characters"
	}
	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return "trailing dot or space"
	}
	base, _ := SplitExtension(name)
	if reservedDeviceNames[strings.ToUpper(base)] {
		return "reserved filename"
	}
	return ""
}
