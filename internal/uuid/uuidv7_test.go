package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew_IsVersion7(t *testing.T) {
	id := New()

	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("New() returned unparsable id %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNew_IsTimeOrdered(t *testing.T) {
	first := New()
	second := New()
	if second <= first {
		t.Errorf("expected %q to sort after %q", second, first)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{New(), true},
		{"01890a5d-ac96-774b-bcce-b302099a8057", true},
		{"not-a-uuid", false},
		{"", false},
		{"123", false},
		{"{01890a5d-ac96-774b-bcce-b302099a8057}", false},
		{"urn:uuid:01890a5d-ac96-774b-bcce-b302099a8057", false},
		{"01890a5dac96774bbcceb302099a8057", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.in); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
