package utils

import (
	"testing"
)

func TestGeneralArticle(t *testing.T) {
	tests := []struct {
		name    string
		article string
		want    string
	}{
		{
			name:    "digits then letters",
			article: "123ABC",
			want:    "123",
		},
		{
			name:    "digits only",
			article: "4570",
			want:    "4570",
		},
		{
			name:    "no leading digits",
			article: "ABC123",
			want:    "",
		},
		{
			name:    "empty article",
			article: "",
			want:    "",
		},
		{
			name:    "digits with dash suffix",
			article: "205-BLK",
			want:    "205",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneralArticle(tt.article)
			if got != tt.want {
				t.Errorf("GeneralArticle(%q) = %q, want %q", tt.article, got, tt.want)
			}
		})
	}
}

func TestIsSmallSize(t *testing.T) {
	tests := []struct {
		name     string
		techSize string
		want     bool
	}{
		{
			name:     "single size below limit",
			techSize: "34",
			want:     true,
		},
		{
			name:     "single size at limit",
			techSize: "36",
			want:     false,
		},
		{
			name:     "range ending below limit",
			techSize: "34-35",
			want:     true,
		},
		{
			name:     "range ending at limit",
			techSize: "35-36",
			want:     false,
		},
		{
			name:     "range ending above limit",
			techSize: "40-41",
			want:     false,
		},
		{
			name:     "non-numeric label treated as big",
			techSize: "ONE SIZE",
			want:     false,
		},
		{
			name:     "empty label treated as big",
			techSize: "",
			want:     false,
		},
		{
			name:     "trailing letters after number",
			techSize: "35RU",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSmallSize(tt.techSize)
			if got != tt.want {
				t.Errorf("IsSmallSize(%q) = %v, want %v", tt.techSize, got, tt.want)
			}
		})
	}
}
