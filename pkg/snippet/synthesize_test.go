package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coderrob/angular-snippet-generator/pkg/extractor"
)

// --- Helpers ---

func saveCancelButton() *extractor.ComponentMetadata {
	return &extractor.ComponentMetadata{
		ClassName: "SaveCancelButtonComponent",
		Selector:  "save-cancel-button",
		Inputs: []extractor.Property{
			{Name: "label", Type: "string"},
			{Name: "disabled", Type: "boolean"},
			{Name: "icon", Type: "string"},
			{Name: "color", Type: "Color"},
			{Name: "tooltip", Type: "string|undefined"},
		},
		Outputs: []extractor.Property{
			{Name: "cancel", Type: "boolean"},
			{Name: "save", Type: "any"},
			{Name: "draft", Type: "any"},
		},
	}
}

// --- Component ---

func TestSynthesize_Component(t *testing.T) {
	title, s, ok := Synthesize(saveCancelButton())
	require.True(t, ok)

	assert.Equal(t, "Save Cancel Button", title)
	assert.Equal(t, []string{
		"<save-cancel-button ",
		`  [label]="$1"`,
		`  [disabled]="${2|true,false|}"`,
		`  [icon]="$3"`,
		`  [color]="$4"`,
		`  [tooltip]="$5"`,
		`  (cancel)="$6:onCancel($event)"`,
		`  (save)="$7:onSave($event)"`,
		`  (draft)="$8:onDraft($event)"`,
		"></save-cancel-button>",
		"$9",
	}, s.Body)
	assert.Equal(t, "A code snippet for Save Cancel Button Component.", s.Description)
	assert.Equal(t, []string{"save-cancel-button"}, s.Prefix)
	assert.Equal(t, "html", s.Scope)
}

func TestSynthesize_ComponentWithoutProperties(t *testing.T) {
	title, s, ok := Synthesize(&extractor.ComponentMetadata{
		ClassName: "SpacerComponent",
		Selector:  "app-spacer",
		Inputs:    []extractor.Property{},
		Outputs:   []extractor.Property{},
	})
	require.True(t, ok)

	assert.Equal(t, "App Spacer", title)
	assert.Equal(t, []string{"<app-spacer ", "></app-spacer>", "$1"}, s.Body)
}

func TestSynthesize_IndexAllocationIsGlobal(t *testing.T) {
	meta := &extractor.ComponentMetadata{
		ClassName: "GridComponent",
		Selector:  "app-grid",
		Inputs: []extractor.Property{
			{Name: "rows", Type: "number"},
			{Name: "columns", Type: "number"},
			{Name: "striped", Type: "boolean"},
		},
		Outputs: []extractor.Property{
			{Name: "sorted", Type: "any"},
			{Name: "selected", Type: "any"},
		},
	}

	_, s, ok := Synthesize(meta)
	require.True(t, ok)

	// m binding lines for inputs, n for outputs, then the exit cursor
	// numbered m+n+1.
	require.Len(t, s.Body, 3+2+3)
	assert.Equal(t, `  (sorted)="$4:onSorted($event)"`, s.Body[4])
	assert.Equal(t, "$6", s.Body[len(s.Body)-1])
}

func TestSynthesize_EmptyNamesConsumeNoIndex(t *testing.T) {
	meta := &extractor.ComponentMetadata{
		ClassName: "DynamicComponent",
		Selector:  "app-dynamic",
		Inputs: []extractor.Property{
			{Name: "", Type: "string"},
			{Name: "visible", Type: "boolean"},
		},
		Outputs: []extractor.Property{
			{Name: "", Type: "any"},
			{Name: "closed", Type: "any"},
		},
	}

	_, s, ok := Synthesize(meta)
	require.True(t, ok)

	assert.Equal(t, []string{
		"<app-dynamic ",
		`  [visible]="${1|true,false|}"`,
		`  (closed)="$2:onClosed($event)"`,
		"></app-dynamic>",
		"$3",
	}, s.Body)
}

// --- Directive ---

func TestSynthesize_Directive(t *testing.T) {
	meta := &extractor.DirectiveMetadata{
		ClassName: "HighlightDirective",
		Selector:  "[appHighlight]",
		Inputs: []extractor.Property{
			{Name: "appHighlight", Type: "string"},
			{Name: "highlightColor", Type: "string"},
		},
		Outputs: []extractor.Property{
			{Name: "highlighted", Type: "boolean"},
		},
	}

	title, s, ok := Synthesize(meta)
	require.True(t, ok)

	assert.Equal(t, "Highlight Directive Directive", title)
	assert.Equal(t, []string{
		"appHighlight",
		`  [appHighlight]="$1"`,
		`  [highlightColor]="$2"`,
		`  (highlighted)="$3:onHighlighted($event)"`,
		"$4",
	}, s.Body)
	assert.Equal(t, "A directive snippet for Highlight Directive.", s.Description)
	assert.Equal(t, []string{"appHighlight"}, s.Prefix)
	assert.Equal(t, "html", s.Scope)
}

func TestSynthesize_DirectiveWithoutBrackets(t *testing.T) {
	meta := &extractor.DirectiveMetadata{
		ClassName: "StickyDirective",
		Selector:  "appSticky",
	}

	_, s, ok := Synthesize(meta)
	require.True(t, ok)
	assert.Equal(t, "appSticky", s.Body[0])
	assert.Equal(t, []string{"appSticky"}, s.Prefix)
}

// --- Pipe ---

func TestSynthesize_Pipe(t *testing.T) {
	meta := &extractor.PipeMetadata{
		ClassName: "CurrencyFormatPipe",
		Name:      "currencyFormat",
	}

	title, s, ok := Synthesize(meta)
	require.True(t, ok)

	assert.Equal(t, "Currency Format Pipe Pipe", title)
	assert.Equal(t, []string{"{{ $1 | currencyFormat$2 }}"}, s.Body)
	assert.Equal(t, "A pipe snippet for Currency Format Pipe.", s.Description)
	assert.Equal(t, []string{"currencyFormat", "| currencyFormat"}, s.Prefix)
	assert.Equal(t, "html", s.Scope)
}

// --- Absent conditions ---

func TestSynthesize_MissingTrigger(t *testing.T) {
	tests := []struct {
		name string
		meta extractor.Metadata
	}{
		{"component without selector", &extractor.ComponentMetadata{
			ClassName: "OrphanComponent",
			Inputs:    []extractor.Property{{Name: "value", Type: "string"}},
		}},
		{"directive without selector", &extractor.DirectiveMetadata{
			ClassName: "OrphanDirective",
		}},
		{"pipe without name", &extractor.PipeMetadata{
			ClassName: "OrphanPipe",
		}},
		{"nil metadata", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := Synthesize(tt.meta)
			assert.False(t, ok)
		})
	}
}

// --- Determinism ---

func TestSynthesize_Deterministic(t *testing.T) {
	meta := saveCancelButton()
	title1, s1, ok1 := Synthesize(meta)
	title2, s2, ok2 := Synthesize(meta)

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, title1, title2)
	assert.Equal(t, s1, s2)
}
