package validate

import (
	"regexp"
	"strings"
)

var reKey = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Key validates a resource identity (id or slug) from the path.
func Key(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reKey.MatchString(s)
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// ImageExt reports whether ext (lowercase, dot included) is an accepted
// upload image extension.
func ImageExt(ext string) bool {
	return imageExts[ext]
}
