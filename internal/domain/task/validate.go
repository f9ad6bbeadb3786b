package task

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/taskconsole/internal/domain"
)

// Field length limits, counted in characters (runes) of the raw input.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
)

// Rule sentinels, wrapped by the *domain.ValidationError values this package
// returns.
var (
	ErrInvalidTitle       = errors.New("invalid title")
	ErrInvalidDescription = errors.New("invalid description")
)

// Validation messages. Create and Update report a blank title differently.
const (
	MsgTitleRequired      = "Title is required and cannot be empty"
	MsgTitleEmpty         = "Title cannot be empty"
	MsgTitleTooLong       = "Title must be 255 characters or less"
	MsgDescriptionTooLong = "Description must be 1000 characters or less"
)

const (
	fieldTitle       = "title"
	fieldDescription = "description"
)

// ValidTitle reports whether title may be stored: present, not blank after
// trimming, and at most MaxTitleLength characters before trimming.
func ValidTitle(title *string) bool {
	return title != nil && checkTitle(*title, MsgTitleRequired) == nil
}

// ValidDescription reports whether description may be stored. An absent,
// empty or whitespace-only description is valid.
func ValidDescription(description *string) bool {
	return checkDescription(description) == nil
}

func checkTitle(title, blankMsg string) error {
	if strings.TrimSpace(title) == "" {
		return domain.NewValidationError(fieldTitle, ErrInvalidTitle, blankMsg)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return domain.NewValidationError(fieldTitle, ErrInvalidTitle, MsgTitleTooLong)
	}
	return nil
}

func checkDescription(description *string) error {
	if description == nil {
		return nil
	}
	if utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return domain.NewValidationError(fieldDescription, ErrInvalidDescription, MsgDescriptionTooLong)
	}
	return nil
}

// normalizeDescription maps an empty description to absent and trims any
// other. A whitespace-only description stays present and becomes "".
func normalizeDescription(description *string) *string {
	if description == nil || *description == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	return &trimmed
}
