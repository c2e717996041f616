//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"desktop default", "", false},
		{"emulated", "1", true},
		{"other value", "true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(mobileEmulateEnv, tt.env)
			if got := IsMobile(); got != tt.want {
				t.Errorf("IsMobile() with %s=%q = %v, want %v", mobileEmulateEnv, tt.env, got, tt.want)
			}
		})
	}
}
