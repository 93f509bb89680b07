package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates an output-relative path for safety.
// It prevents path traversal and keeps paths to a reasonable length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// artifactNameRegex matches file names produced for rendered pages.
var artifactNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*\.svg$`)

// ValidateArtifactName validates a requested page artifact name such as
// "about-us.svg". It must be a bare file name in the form produced by the
// output writer.
func ValidateArtifactName(name string) error {
	if err := ValidatePath(name); err != nil {
		return err
	}
	if strings.Contains(name, "/") {
		return New(ErrCodeInvalidPath, "artifact name cannot contain path separators")
	}
	if !artifactNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPath, "invalid artifact name: %q", name)
	}
	return nil
}

// ValidateRunID validates a run directory name.
func ValidateRunID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "run id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "run id too long (max 64 characters)")
	}
	for _, r := range id {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
			return New(ErrCodeInvalidInput, "run id contains invalid character %q", r)
		}
	}
	return nil
}
