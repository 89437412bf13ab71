// Package usecase implements the business-logic layer. It is the only
// place where the task and list stores are used together: referential
// checks, input validation and query translation happen here, while the
// stores stay free of cross-collection knowledge.
//
// Two outcomes are kept strictly apart throughout the package: invalid
// input raises an error wrapping domain.ErrInvalidInput, while a
// valid-looking ID that simply is not there comes back as nil/false.
package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/hmizuno/taskdeck/internal/domain"
)

// validateID checks that id is a well-formed UUID. field names the input
// in the error message.
func validateID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s must be a valid UUID", domain.ErrInvalidInput, field)
	}
	return nil
}

// validateTitle enforces the 1-200 character bound for task titles.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLen {
		return fmt.Errorf("%w: title must be at most %d characters", domain.ErrInvalidInput, domain.MaxTitleLen)
	}
	return nil
}

// validateTaskDescription enforces the task description bound.
func validateTaskDescription(desc string) error {
	if utf8.RuneCountInString(desc) > domain.MaxTaskDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", domain.ErrInvalidInput, domain.MaxTaskDescriptionLen)
	}
	return nil
}

// validateListName enforces the 1-100 character bound for list names.
func validateListName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxListNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", domain.ErrInvalidInput, domain.MaxListNameLen)
	}
	return nil
}

// validateListDescription enforces the list description bound.
func validateListDescription(desc string) error {
	if utf8.RuneCountInString(desc) > domain.MaxListDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", domain.ErrInvalidInput, domain.MaxListDescriptionLen)
	}
	return nil
}

// validateDeadline rejects deadlines that are not strictly in the future
// at validation time. Tasks already holding a past deadline are never
// retroactively rejected; this check only guards new input.
func validateDeadline(deadline, now time.Time) error {
	if !deadline.After(now) {
		return fmt.Errorf("%w: deadline must be in the future", domain.ErrInvalidInput)
	}
	return nil
}

// validateSort checks the sort field and order vocabulary.
func validateSort(field domain.SortField, order domain.SortOrder) error {
	if field != "" && !domain.ValidSortField(field) {
		return fmt.Errorf("%w: unknown sort field %q", domain.ErrInvalidInput, field)
	}
	if !domain.ValidSortOrder(order) {
		return fmt.Errorf("%w: sort order must be asc or desc", domain.ErrInvalidInput)
	}
	return nil
}
