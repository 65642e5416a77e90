package main

import (
	"strings"
	"testing"
)

// TestBuildHealthURL verifies that buildHealthURL constructs correct URLs
func TestBuildHealthURL(t *testing.T) {
	tests := []struct {
		name     string
		port     string
		expected string
	}{
		{
			name:     "Default port",
			port:     "3000",
			expected: "http://127.0.0.1:3000/health",
		},
		{
			name:     "Custom port",
			port:     "8080",
			expected: "http://127.0.0.1:8080/health",
		},
		{
			name:     "High port number",
			port:     "65535",
			expected: "http://127.0.0.1:65535/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := buildHealthURL(tt.port)
			if result != tt.expected {
				t.Errorf("buildHealthURL(%q) = %q, want %q", tt.port, result, tt.expected)
			}
		})
	}
}

// TestBuildHealthURLUsesIPv4 ensures the probe never relies on localhost,
// which is unresolvable in scratch images without /etc/hosts
func TestBuildHealthURLUsesIPv4(t *testing.T) {
	url := buildHealthURL("3000")
	if strings.Contains(url, "localhost") {
		t.Error("buildHealthURL must not use 'localhost' for scratch image compatibility")
	}
}
