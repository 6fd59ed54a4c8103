package attendance

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    Status
		wantErr bool
	}{
		{"present", StatusPresent, false},
		{"leave", StatusLeave, false},
		{"absence", StatusAbsence, false},
		{"sick", "", true},
		{"", "", true},
		{"Present", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("ParseStatus(%q) error = %v, want ErrInvalidStatus", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
