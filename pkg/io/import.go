package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/site"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns the format implied by the file extension.
// Unknown extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReadDocument decodes a document from r. It fails with
// ErrCodeInvalidDocument when the content cannot be decoded and with
// ErrCodeNoPages when it decodes to zero pages. ReadDocument does not
// close r.
func ReadDocument(r io.Reader, format Format) (*site.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read document")
	}
	if format == FormatYAML {
		if data, err = yamlToJSON(data); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode yaml")
		}
	}

	var doc site.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", format)
	}
	if len(doc.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeNoPages, "document has no pages")
	}
	return &doc, nil
}

// ImportDocument reads the document at path, choosing the decoder from the
// extension. A missing file fails with ErrCodeFileNotFound.
func ImportDocument(path string) (*site.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "missing %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	doc, err := ReadDocument(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ReadSitemap decodes a sitemap from r.
func ReadSitemap(r io.Reader, format Format) (*site.Sitemap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sitemap: %w", err)
	}
	if format == FormatYAML {
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("decode sitemap: %w", err)
		}
	}
	var sm site.Sitemap
	if err := json.Unmarshal(data, &sm); err != nil {
		return nil, fmt.Errorf("decode sitemap: %w", err)
	}
	return &sm, nil
}

// OptionalSitemap reads the sitemap at path. It returns nil without error
// when the file does not exist.
func OptionalSitemap(path string) (*site.Sitemap, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sm, err := ReadSitemap(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sm, nil
}

// yamlToJSON re-encodes YAML as JSON so both formats share the lenient
// JSON decoders of the site model.
func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		if err == io.EOF {
			return []byte("null"), nil
		}
		return nil, err
	}
	return json.Marshal(v)
}
