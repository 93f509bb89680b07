package io

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/site"
)

// HomeName is the file name used for the root page.
const HomeName = "home"

var (
	unsafeRuns = regexp.MustCompile(`[^a-z0-9-]+`)
	dashRuns   = regexp.MustCompile(`-+`)
)

// SafeFilename lowercases s and reduces it to [a-z0-9-], collapsing
// separator runs. An empty result becomes "page".
func SafeFilename(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = unsafeRuns.ReplaceAllString(s, "-")
	s = strings.Trim(dashRuns.ReplaceAllString(s, "-"), "-")
	if s == "" {
		return "page"
	}
	return s
}

// IsRoot reports whether p is the site root.
func IsRoot(p site.Page) bool {
	slug := strings.TrimSpace(p.Slug)
	return slug == "" || slug == "/"
}

// OutputNames returns one file stem per page, in page order. The root page
// is named "home"; other pages use SafeFilename of their name. Later
// duplicates get "-2", "-3", ... so no page overwrites another.
func OutputNames(pages []site.Page) []string {
	names := make([]string, len(pages))
	taken := make(map[string]bool, len(pages))
	for i, p := range pages {
		base := SafeFilename(p.Name)
		if IsRoot(p) {
			base = HomeName
		}
		name := base
		for n := 2; taken[name]; n++ {
			name = base + "-" + strconv.Itoa(n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

// Artifact is one rendered page.
type Artifact struct {
	Name string // file stem, without extension
	Page string // page display name
	SVG  []byte
}

// FileName returns the artifact's file name.
func (a Artifact) FileName() string { return a.Name + ".svg" }

// WriteArtifacts writes each artifact to dir/<name>.svg, creating dir as
// needed, and returns the written paths in order.
func WriteArtifacts(dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
	}
	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		if err := errors.ValidateArtifactName(a.FileName()); err != nil {
			return paths, fmt.Errorf("page %q: %w", a.Page, err)
		}
		path := filepath.Join(dir, a.FileName())
		if err := os.WriteFile(path, a.SVG, 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
