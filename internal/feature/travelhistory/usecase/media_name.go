package usecase

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxOriginalNameLen = 100

// newMediaName returns "<unix millis>-<random token>-<original name>".
// The token keeps concurrent uploads of identically named files apart.
func newMediaName(original string) string {
	return buildMediaName(time.Now(), uuid.NewString(), original)
}

func buildMediaName(now time.Time, token, original string) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + token + "-" + sanitizeFilename(original)
}

// sanitizeFilename keeps the base name and replaces characters that are
// unsafe in paths or URLs.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		name = ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.ReplaceAll(b.String(), "..", "_")
	if len(out) > maxOriginalNameLen {
		out = out[len(out)-maxOriginalNameLen:]
	}
	if out == "" {
		out = "upload"
	}
	return out
}
