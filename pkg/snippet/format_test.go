package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromClassName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"component class", "SaveCancelButtonComponent", "Save Cancel Button Component"},
		{"directive class", "HighlightDirective", "Highlight Directive"},
		{"pipe class", "CurrencyFormatPipe", "Currency Format Pipe"},
		{"single word", "Button", "Button"},
		{"all uppercase has no runs", "ABC", ""},
		{"lowercase has no runs", "widget", ""},
		{"leading acronym keeps trailing runs", "XMLHttpRequest", "Http Request"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titleFromClassName(tt.in))
		})
	}
}

func TestTitleFromSelector(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"kebab case", "save-cancel-button", "Save Cancel Button"},
		{"single segment", "widget", "Widget"},
		{"short segments", "app-x", "App X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titleFromSelector(tt.in))
		})
	}
}

func TestStripAttributeBrackets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bracketed", "[appHighlight]", "appHighlight"},
		{"bare", "appSticky", "appSticky"},
		{"leading only", "[half", "half"},
		{"trailing only", "half]", "half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripAttributeBrackets(tt.in))
		})
	}
}
