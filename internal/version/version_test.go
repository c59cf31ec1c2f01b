package version

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{
			name:    "all values provided",
			version: "v1.0.0",
			commit:  "abcdef1234567890",
			want:    "v1.0.0-abcdef1",
		},
		{
			name:   "empty version",
			commit: "abcdef1234567890",
			want:   "dev-abcdef1",
		},
		{
			name:    "short commit",
			version: "v1.0.0",
			commit:  "abc",
			want:    "v1.0.0-abc",
		},
		{
			name:    "no commit",
			version: "v1.0.0",
			want:    "v1.0.0",
		},
		{
			name: "untagged build",
			want: "dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Short(tt.version, tt.commit)
			if got != tt.want {
				t.Errorf("Short() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetailed(t *testing.T) {
	result := Detailed("v1.0.0", "abcdef1234567890", "2026-01-01T00:00:00Z")

	if !strings.Contains(result, "fanctl v1.0.0") {
		t.Error("Detailed() should contain the tool name and version")
	}
	if !strings.Contains(result, "Commit:     abcdef1234567890") {
		t.Error("Detailed() should contain the commit")
	}
	if !strings.Contains(result, "Built:      2026-01-01T00:00:00Z") {
		t.Error("Detailed() should contain the build time")
	}
	if !strings.Contains(result, "Go version:") {
		t.Error("Detailed() should contain the Go version")
	}
	if !strings.Contains(result, "OS/Arch:") {
		t.Error("Detailed() should contain OS/Arch")
	}

	fallback := Detailed("", "", "")
	if !strings.Contains(fallback, "fanctl dev") {
		t.Error("Detailed() should fall back to the dev version")
	}
	if !strings.Contains(fallback, "Commit:     unknown") {
		t.Error("Detailed() should fall back to unknown commit")
	}
}
