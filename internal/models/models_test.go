package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrNotFound, ErrDraftReference) {
		t.Error("ErrNotFound should not equal ErrDraftReference")
	}
}

// ============================================================================
// Reference Tests
// ============================================================================

func TestReference_Label(t *testing.T) {
	tests := []struct {
		ref  Reference
		want string
	}{
		{Reference{Author: "Smith", PubYear: 1990}, "Smith(1990)"},
		{Reference{Author: "Keller et al.", PubYear: 2004}, "Keller et al.(2004)"},
		{Reference{}, "(0)"},
	}

	for _, tt := range tests {
		if got := tt.ref.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestReference_IsDraft(t *testing.T) {
	if !(Reference{Author: "Smith"}).IsDraft() {
		t.Error("reference without ID should be a draft")
	}
	if (Reference{ID: 4, Author: "Smith"}).IsDraft() {
		t.Error("reference with ID should not be a draft")
	}
}

func TestColumn_GetID(t *testing.T) {
	c := &Column{ID: 12}
	if c.GetID() != 12 {
		t.Errorf("GetID() = %d, want 12", c.GetID())
	}
}
