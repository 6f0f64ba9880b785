package page

import (
	"context"
	"fmt"
	c "pagecms/internal/core/domain/common"
	"strings"
)

// Slugify derives a URL slug from a title: lower-cased, every run of
// characters outside [a-z0-9-] collapsed to a single dash, dashes trimmed
// from both ends. Uniqueness is the caller's concern, the free-slug probe
// appends "-1", "-2", ... in that order. Published URLs depend on it.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	b.Grow(len(slug))
	prevDash := false
	for _, r := range slug {
		isAllowed := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAllowed {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteByte('-')
			prevDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// FreeSlug probes the repository for the first slug not taken yet, in the
// order base, base-1, base-2, ... The excludeID lets an update keep its
// own slug.
func FreeSlug(
	ctx context.Context,
	repository Repository,
	base string,
	excludeID c.Optional[ID],
) (string, error) {
	if base == "" {
		base = "page"
	}
	slug := base
	for counter := 1; ; counter++ {
		exists, err := repository.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
