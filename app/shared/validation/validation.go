package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
)

// DefaultMaxNameLength is used when no positive limit is configured.
const DefaultMaxNameLength = 100

// Name trims a display name and checks it is present and within maxLength runes.
func Name(name string, maxLength int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.Validation("name", "is required")
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxNameLength
	}
	if utf8.RuneCountInString(name) > maxLength {
		return "", apperrors.Validation("name", "must be at most %d characters", maxLength)
	}
	return name, nil
}
