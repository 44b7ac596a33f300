package ident

import (
	"errors"
	"strings"
	"testing"
)

func TestNewViewID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"plain", "header", false},
		{"dotted", "section.title_1", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"control", "a\nb", true},
		{"too long", strings.Repeat("x", MaxLength+1), true},
		{"max length", strings.Repeat("x", MaxLength), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewViewID(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewViewID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && id.String() != tt.in {
				t.Errorf("String() = %q, want %q", id, tt.in)
			}
		})
	}
}

func TestEmptyWrapsErrEmpty(t *testing.T) {
	_, err := NewModelID("")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("NewModelID(\"\") error = %v, want ErrEmpty", err)
	}
	if !strings.HasPrefix(err.Error(), "model ") {
		t.Errorf("error %q should name the keyspace", err)
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPopupID(\"\") should panic")
		}
	}()
	MustPopupID("")
}
