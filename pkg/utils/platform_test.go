//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "unset", value: "", want: false},
		{name: "emulated", value: "1", want: true},
		{name: "other value", value: "yes", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEEPDIVE_MOBILE_EMULATE", tt.value)
			if got := IsMobile(); got != tt.want {
				t.Errorf("IsMobile() = %v, want %v", got, tt.want)
			}
		})
	}
}
