package utils

import (
	"path/filepath"
	"strings"
	"time"
)

// MaxUploadSize caps menu image uploads at 16MB.
const MaxUploadSize = 16 << 20

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedImageFile reports whether the filename carries an accepted
// image extension.
func AllowedImageFile(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// UniqueImageName builds the stored filename: a timestamp prefix plus the
// sanitized original name, e.g. "20240115_093045_latte.png".
func UniqueImageName(original string) string {
	return time.Now().Format("20060102_150405_") + SanitizeFilename(original)
}

// SanitizeFilename strips path components and replaces characters that
// are unsafe in stored filenames.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r > 127:
			// keep non-ASCII (Korean menu names in filenames are common)
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
