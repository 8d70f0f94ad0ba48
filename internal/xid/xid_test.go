package xid

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewReturnsDistinctIDs(t *testing.T) {
	a := New()
	b := New()
	if a == uuid.Nil || b == uuid.Nil {
		t.Fatalf("expected non-nil ids")
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
}

func TestShortUppercasesFirstEightHex(t *testing.T) {
	id := uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6")
	if got := Short(id); got != "3FA85F64" {
		t.Fatalf("expected 3FA85F64, got %s", got)
	}
}

func TestHasPrefix(t *testing.T) {
	id := uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6")
	tests := []struct {
		prefix string
		want   bool
	}{
		{"3fa8", true},
		{"3FA85F64-57", true},
		{"3fa85f645717", true},
		{"", false},
		{"abcd", false},
	}
	for _, tt := range tests {
		if got := HasPrefix(id, tt.prefix); got != tt.want {
			t.Fatalf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}
