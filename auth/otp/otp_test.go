package otp

import "testing"

func TestGenerate(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := Generate()
		if len(code) != 4 {
			t.Fatalf("Generate() = %q, want 4 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("Generate() = %q, contains non-digit %q", code, r)
			}
		}
	}
}
