// Package task defines the Task entity and the rules that decide whether a
// title and description may be stored.
package task

import "strings"

// Task is a single trackable to-do item. ID is assigned by the store and
// never changes. A nil Description means no description.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool
}

// Patch carries the fields of a partial update. Nil fields are left
// unchanged; an empty Description clears the stored one.
type Patch struct {
	Title       *string
	Description *string
}

// New validates title and description and returns a normalized, incomplete
// task without an ID. Errors are *domain.ValidationError values wrapping
// ErrInvalidTitle or ErrInvalidDescription.
func New(title string, description *string) (Task, error) {
	if err := checkTitle(title, MsgTitleRequired); err != nil {
		return Task{}, err
	}
	if err := checkDescription(description); err != nil {
		return Task{}, err
	}

	return Task{
		Title:       strings.TrimSpace(title),
		Description: normalizeDescription(description),
	}, nil
}

// Apply validates every supplied field of p before writing any of them, so a
// failed patch leaves t untouched. Completed is never modified.
func (t *Task) Apply(p Patch) error {
	if p.Title != nil {
		if err := checkTitle(*p.Title, MsgTitleEmpty); err != nil {
			return err
		}
	}
	if err := checkDescription(p.Description); err != nil {
		return err
	}

	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = normalizeDescription(p.Description)
	}
	return nil
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// Clone returns a deep copy that shares no memory with t.
func (t Task) Clone() Task {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return t
}

// HasDescription reports whether a description is stored.
func (t Task) HasDescription() bool {
	return t.Description != nil
}

// DescriptionOrEmpty returns the description, or "" when absent.
func (t Task) DescriptionOrEmpty() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}
