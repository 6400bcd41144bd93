package normalize

import "testing"

func TestCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"desserts", "Desserts"},
		{" main dishes ", "Main Dishes"},
		{"Pizza", "Pizza"},
	}
	for _, tt := range tests {
		if got := Category(tt.in); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
