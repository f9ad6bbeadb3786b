package task

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		title           string
		description     *string
		wantTitle       string
		wantDescription *string
	}{
		{
			name:      "title only",
			title:     "Buy milk",
			wantTitle: "Buy milk",
		},
		{
			name:            "title and description",
			title:           "Pay bills",
			description:     strPtr("due Friday"),
			wantTitle:       "Pay bills",
			wantDescription: strPtr("due Friday"),
		},
		{
			name:            "trims both fields",
			title:           "  Pay bills \t",
			description:     strPtr("  due Friday  "),
			wantTitle:       "Pay bills",
			wantDescription: strPtr("due Friday"),
		},
		{
			name:        "empty description is absent",
			title:       "Task",
			description: strPtr(""),
			wantTitle:   "Task",
		},
		{
			name:            "whitespace-only description is kept empty",
			title:           "Task",
			description:     strPtr("   "),
			wantTitle:       "Task",
			wantDescription: strPtr(""),
		},
		{
			name:      "title at maximum length",
			title:     strings.Repeat("x", 255),
			wantTitle: strings.Repeat("x", 255),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := New(tt.title, tt.description)
			if err != nil {
				t.Fatalf("New() error = %v, want nil", err)
			}
			if got.ID != 0 {
				t.Errorf("ID = %d, want 0 (unassigned)", got.ID)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Completed {
				t.Error("Completed = true, want false")
			}
			assertDescription(t, got.Description, tt.wantDescription)
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description *string
		rule        error
		msg         string
	}{
		{name: "empty title", title: "", rule: ErrInvalidTitle, msg: MsgTitleRequired},
		{name: "whitespace title", title: "   ", rule: ErrInvalidTitle, msg: MsgTitleRequired},
		{name: "title too long", title: strings.Repeat("x", 256), rule: ErrInvalidTitle, msg: MsgTitleTooLong},
		{
			name:        "description too long",
			title:       "Task",
			description: strPtr(strings.Repeat("x", 1001)),
			rule:        ErrInvalidDescription,
			msg:         MsgDescriptionTooLong,
		},
		{
			name:        "title checked before description",
			title:       "",
			description: strPtr(strings.Repeat("x", 1001)),
			rule:        ErrInvalidTitle,
			msg:         MsgTitleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.title, tt.description)
			requireValidationRule(t, err, tt.rule, tt.msg)
		})
	}
}

func TestTask_Apply(t *testing.T) {
	t.Parallel()

	base := func() Task {
		return Task{ID: 7, Title: "Original", Description: strPtr("Original description"), Completed: true}
	}

	tests := []struct {
		name            string
		patch           Patch
		wantTitle       string
		wantDescription *string
	}{
		{
			name:            "empty patch changes nothing",
			patch:           Patch{},
			wantTitle:       "Original",
			wantDescription: strPtr("Original description"),
		},
		{
			name:            "title only keeps description",
			patch:           Patch{Title: strPtr("  Renamed ")},
			wantTitle:       "Renamed",
			wantDescription: strPtr("Original description"),
		},
		{
			name:            "description only keeps title",
			patch:           Patch{Description: strPtr(" New description ")},
			wantTitle:       "Original",
			wantDescription: strPtr("New description"),
		},
		{
			name:      "empty description clears it",
			patch:     Patch{Description: strPtr("")},
			wantTitle: "Original",
		},
		{
			name:            "whitespace-only description is kept empty",
			patch:           Patch{Description: strPtr(" \t ")},
			wantTitle:       "Original",
			wantDescription: strPtr(""),
		},
		{
			name:            "both fields",
			patch:           Patch{Title: strPtr("X"), Description: strPtr("Y")},
			wantTitle:       "X",
			wantDescription: strPtr("Y"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			td := base()
			if err := td.Apply(tt.patch); err != nil {
				t.Fatalf("Apply() error = %v, want nil", err)
			}
			if td.ID != 7 {
				t.Errorf("ID = %d, want 7", td.ID)
			}
			if !td.Completed {
				t.Error("Completed changed, want it untouched")
			}
			if td.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", td.Title, tt.wantTitle)
			}
			assertDescription(t, td.Description, tt.wantDescription)
		})
	}
}

func TestTask_Apply_InvalidLeavesTaskUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch Patch
		rule  error
		msg   string
	}{
		{name: "blank title", patch: Patch{Title: strPtr("  ")}, rule: ErrInvalidTitle, msg: MsgTitleEmpty},
		{name: "empty title", patch: Patch{Title: strPtr("")}, rule: ErrInvalidTitle, msg: MsgTitleEmpty},
		{
			name:  "long title",
			patch: Patch{Title: strPtr(strings.Repeat("x", 256))},
			rule:  ErrInvalidTitle,
			msg:   MsgTitleTooLong,
		},
		{
			name:  "valid title with long description",
			patch: Patch{Title: strPtr("Fine"), Description: strPtr(strings.Repeat("x", 1001))},
			rule:  ErrInvalidDescription,
			msg:   MsgDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			td := Task{ID: 1, Title: "Original", Description: strPtr("Keep")}
			err := td.Apply(tt.patch)
			requireValidationRule(t, err, tt.rule, tt.msg)

			if td.Title != "Original" {
				t.Errorf("Title = %q, want unchanged %q", td.Title, "Original")
			}
			assertDescription(t, td.Description, strPtr("Keep"))
		})
	}
}

func TestTask_Toggle(t *testing.T) {
	t.Parallel()

	td := Task{ID: 1, Title: "Task"}
	td.Toggle()
	if !td.Completed {
		t.Fatal("Completed = false after one toggle, want true")
	}
	td.Toggle()
	if td.Completed {
		t.Fatal("Completed = true after two toggles, want false")
	}
}

func TestTask_Clone(t *testing.T) {
	t.Parallel()

	original := Task{ID: 1, Title: "Task", Description: strPtr("shared?")}
	clone := original.Clone()

	*clone.Description = "mutated"
	clone.Title = "changed"

	if *original.Description != "shared?" {
		t.Errorf("original description = %q, want it unaffected by clone mutation", *original.Description)
	}
	if original.Title != "Task" {
		t.Errorf("original title = %q, want %q", original.Title, "Task")
	}

	if (Task{}).Clone().Description != nil {
		t.Error("Clone() of absent description should stay nil")
	}
}

func TestTask_DescriptionOrEmpty(t *testing.T) {
	t.Parallel()

	if got := (Task{}).DescriptionOrEmpty(); got != "" {
		t.Errorf("DescriptionOrEmpty() = %q, want empty", got)
	}
	if got := (Task{Description: strPtr("d")}).DescriptionOrEmpty(); got != "d" {
		t.Errorf("DescriptionOrEmpty() = %q, want %q", got, "d")
	}
}

func assertDescription(t *testing.T, got, want *string) {
	t.Helper()

	switch {
	case want == nil && got != nil:
		t.Errorf("Description = %q, want absent", *got)
	case want != nil && got == nil:
		t.Errorf("Description absent, want %q", *want)
	case want != nil && *got != *want:
		t.Errorf("Description = %q, want %q", *got, *want)
	}
}
