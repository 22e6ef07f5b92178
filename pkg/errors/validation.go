package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// Alignments accepted for text components.
var validAlignments = map[string]bool{
	"left":   true,
	"center": true,
	"right":  true,
}

// ValidateAlignment validates a text alignment value.
func ValidateAlignment(align string) error {
	if !validAlignments[align] {
		return New(ErrCodeInvalidInput, "invalid alignment: %q (must be one of: left, center, right)", align)
	}
	return nil
}

// Object-fit modes accepted for image components.
var validObjectFits = map[string]bool{
	"cover":   true,
	"contain": true,
	"fill":    true,
	"none":    true,
}

// ValidateObjectFit validates an image object-fit value.
func ValidateObjectFit(fit string) error {
	if !validObjectFits[fit] {
		return New(ErrCodeInvalidInput, "invalid object-fit: %q (must be one of: cover, contain, fill, none)", fit)
	}
	return nil
}

// hexColorRegex matches 3- and 6-digit hex color values.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Named colors accepted alongside hex values. Kept deliberately small;
// anything fancier should be written as hex.
var namedColors = map[string]bool{
	"black": true, "white": true, "red": true, "green": true,
	"blue": true, "yellow": true, "gray": true, "transparent": true,
}

// ValidateColor validates a CSS-style color value: a #rgb/#rrggbb hex
// string or one of a small set of named colors. Empty means "unset" and
// is allowed.
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if namedColors[strings.ToLower(color)] {
		return nil
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color: %q", color)
	}
	return nil
}

// ValidateImageSource validates an image source URL. Empty is allowed
// (a freshly created image component has no source yet); otherwise the
// URL must use the http or https scheme.
func ValidateImageSource(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "image source must use http or https scheme")
	}
	return nil
}

// ValidateDocumentName validates a document name for safety.
// It ensures the name is a simple basename without path components.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - No hidden files (starting with .)
//   - Maximum length of 128 characters
func ValidateDocumentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDocument, "document name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidDocument, "document name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocument, "document name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidDocument, "document name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidDocument, "document name cannot contain path traversal sequences (..)")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidDocument, "document name cannot be a hidden file")
	}

	return nil
}

// ValidateOpacity validates an opacity value in [0, 1].
func ValidateOpacity(opacity float64) error {
	if opacity < 0 || opacity > 1 {
		return New(ErrCodeInvalidInput, "opacity must be in [0, 1], got %v", opacity)
	}
	return nil
}
