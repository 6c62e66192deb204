package analysis

import (
	"strconv"
	"strings"
)

// GitHubSlug reproduces GitHub's heading-anchor algorithm closely enough
// for MD051 link-fragment checking: lowercase, strip characters outside
// [a-z0-9 _-], collapse spaces to hyphens. Disambiguating duplicate slugs
// with a "-1", "-2", ... suffix is the caller's responsibility (it needs
// document-wide state a pure function can't hold).
func GitHubSlug(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			// dropped: punctuation and other symbols contribute nothing
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "-")
}

// SlugDisambiguator assigns GitHub's "-1", "-2", ... suffixes to repeated
// slugs in first-seen order.
type SlugDisambiguator struct {
	seen map[string]int
}

func NewSlugDisambiguator() *SlugDisambiguator {
	return &SlugDisambiguator{seen: make(map[string]int)}
}

func (d *SlugDisambiguator) Next(base string) string {
	n := d.seen[base]
	d.seen[base] = n + 1
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
