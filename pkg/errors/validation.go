package errors

import (
	"regexp"
	"unicode"
)

// ValidateElementName validates the display name of a library element.
// It rejects names that would corrupt the generated files or the on-disk
// library layout.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters (including newlines and tabs)
//   - Maximum length of 100 characters
func ValidateElementName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "element name cannot be empty")
	}

	if len(name) > 100 {
		return New(ErrCodeInvalidConfig, "element name too long (max 100 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "element name contains invalid control characters")
		}
	}

	return nil
}

// versionRegex matches dot-separated numeric version strings such as
// "0.1" or "1.2.3", the only form library files accept.
var versionRegex = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ValidateVersion validates an element version string.
func ValidateVersion(version string) error {
	if version == "" {
		return New(ErrCodeInvalidConfig, "version cannot be empty")
	}

	if !versionRegex.MatchString(version) {
		return New(ErrCodeInvalidConfig, "invalid version %q (must be dot-separated numbers, e.g. 0.1.0)", version)
	}

	return nil
}

// uuidRegex matches the canonical lowercase textual form of a UUID.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateUUID validates a caller-supplied UUID override. Generated files
// embed these verbatim, so only the canonical lowercase form is accepted.
func ValidateUUID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "uuid cannot be empty")
	}

	if !uuidRegex.MatchString(id) {
		return New(ErrCodeInvalidConfig, "invalid uuid %q (expected the form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)", id)
	}

	return nil
}
