// pkg/memory/memory_test.go

package memory

import "testing"

func TestKib(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  uint64
	}{
		{0, 0},
		{1023, 0},
		{1024, 1},
		{16 * 1024 * 1024 * 1024, 16 * 1024 * 1024},
	}
	for _, tt := range tests {
		if got := kib(tt.bytes); got != tt.want {
			t.Errorf("kib(%d) = %d, want %d", tt.bytes, got, tt.want)
		}
	}
}

func TestTotal(t *testing.T) {
	r := New()
	total, err := r.Total()
	if err != nil {
		t.Fatalf("Total: %v", err)
	}
	if total == 0 {
		t.Error("Total returned 0, expected a nonzero amount of memory")
	}

	used, err := r.Used()
	if err != nil {
		t.Fatalf("Used: %v", err)
	}
	if used > total {
		t.Errorf("Used (%d KiB) exceeds Total (%d KiB)", used, total)
	}
}
