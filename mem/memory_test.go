package mem

import "testing"

func TestProcessMemoryMb(t *testing.T) {
	if got := ProcessMemoryMb(); got <= 0 {
		t.Errorf("expected a positive resident size, got %f", got)
	}
}
