package cache

import "strings"

// ArtifactKeyOpts are the render inputs that change a page's SVG besides the
// page itself.
type ArtifactKeyOpts struct {
	Nav        []string `json:"nav"`
	ConfigHash string   `json:"config"`
	Style      string   `json:"style"`
	Overlay    bool     `json:"overlay"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered page, given the hash of the
	// page's canonical encoding.
	ArtifactKey(pageHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(pageHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", pageHash, opts.Nav, opts.ConfigHash, strings.ToLower(opts.Style), opts.Overlay)
}

var _ Keyer = DefaultKeyer{}
