package impl

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// buildSlug derives a readable, best-effort identifier such as "john-doe-1718000000000".
func buildSlug(firstName, lastName string, at time.Time) string {
	base := slugSeparators.ReplaceAllString(strings.ToLower(firstName+"-"+lastName), "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "user"
	}

	return base + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}
