package assets

import (
	"regexp"
	"strings"
)

// Rule is a single pure string rewrite.
type Rule struct {
	Name  string
	Apply func(string) string
}

var leadingDot = regexp.MustCompile(`^\./?`)

// Corrections are applied in order before candidate generation.
var Corrections = []Rule{
	{Name: "assests", Apply: func(p string) string { return strings.ReplaceAll(p, "assests", "assets") }},
}

// Candidates are tried in order against the manifest; the first hit wins.
var Candidates = []Rule{
	{Name: "as-declared", Apply: func(p string) string { return p }},
	{Name: "src-to-relative", Apply: func(p string) string {
		if rest, ok := strings.CutPrefix(p, "src/"); ok {
			return "./" + rest
		}
		return p
	}},
	{Name: "rooted-under-src", Apply: func(p string) string {
		return leadingDot.ReplaceAllLiteralString(p, "/src/")
	}},
	{Name: "relative-without-src", Apply: func(p string) string {
		return "./" + strings.TrimPrefix(p, "src/")
	}},
}

// Resolver turns author-declared image paths into served URLs.
type Resolver struct {
	manifest    *Manifest
	corrections []Rule
	candidates  []Rule
}

// NewResolver returns a resolver using the default corrections and candidates.
func NewResolver(m *Manifest) *Resolver {
	return &Resolver{manifest: m, corrections: Corrections, candidates: Candidates}
}

// Normalize applies the corrections to declared.
func (r *Resolver) Normalize(declared string) string {
	for _, c := range r.corrections {
		declared = c.Apply(declared)
	}
	return declared
}

// CandidatesFor lists the spellings tried for declared, in lookup order,
// without duplicates.
func (r *Resolver) CandidatesFor(declared string) []string {
	if declared == "" {
		return nil
	}
	p := r.Normalize(declared)
	out := make([]string, 0, len(r.candidates))
	seen := make(map[string]bool, len(r.candidates))
	for _, c := range r.candidates {
		s := c.Apply(p)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Resolve returns the URL of the first candidate found in the manifest, or
// "" when none matches.
func (r *Resolver) Resolve(declared string) string {
	if r.manifest == nil {
		return ""
	}
	for _, c := range r.CandidatesFor(declared) {
		if u, ok := r.manifest.Lookup(c); ok {
			return u
		}
	}
	return ""
}
