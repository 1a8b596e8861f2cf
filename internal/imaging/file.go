package imaging

import (
	"context"
	"os"
	"regexp"
	"strings"
)

var (
	invalidChars     = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	repeatedSpaceRun = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to path with mode 0644, truncating any existing
// file. The context is checked before writing.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file
// names on common platforms.
//
//	SanitizeFileName("Studio: Paris/Berlin") // "Studio_ Paris_Berlin"
//	SanitizeFileName("Untitled...")          // "Untitled"
//	SanitizeFileName("Name   with  spaces")  // "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedSpaceRun.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// EnsureDir creates a directory and all parents with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
