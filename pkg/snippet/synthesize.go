package snippet

import (
	"fmt"
	"strconv"

	"github.com/Coderrob/angular-snippet-generator/pkg/extractor"
)

// markupScope restricts every generated snippet to HTML documents,
// where Angular template syntax applies.
const markupScope = "html"

// Synthesize builds the snippet record for one extracted declaration
// and returns its title, the record, and whether anything was produced.
// Declarations without a usable trigger (empty selector or pipe name)
// produce nothing.
func Synthesize(meta extractor.Metadata) (string, Snippet, bool) {
	switch m := meta.(type) {
	case *extractor.ComponentMetadata:
		return componentSnippet(m)
	case *extractor.DirectiveMetadata:
		return directiveSnippet(m)
	case *extractor.PipeMetadata:
		return pipeSnippet(m)
	default:
		return "", Snippet{}, false
	}
}

func componentSnippet(m *extractor.ComponentMetadata) (string, Snippet, bool) {
	if m.Selector == "" {
		return "", Snippet{}, false
	}

	inputs := namedProperties(m.Inputs)
	outputs := namedProperties(m.Outputs)

	body := make([]string, 0, len(inputs)+len(outputs)+3)
	body = append(body, "<"+m.Selector+" ")

	next := 1
	for _, p := range inputs {
		body = append(body, inputLine(p, next))
		next++
	}
	for _, p := range outputs {
		body = append(body, outputLine(p, next))
		next++
	}
	body = append(body, "></"+m.Selector+">")
	body = append(body, "$"+strconv.Itoa(next))

	return titleFromSelector(m.Selector), Snippet{
		Body:        body,
		Description: fmt.Sprintf("A code snippet for %s.", titleFromClassName(m.ClassName)),
		Prefix:      []string{m.Selector},
		Scope:       markupScope,
	}, true
}

func directiveSnippet(m *extractor.DirectiveMetadata) (string, Snippet, bool) {
	if m.Selector == "" {
		return "", Snippet{}, false
	}

	// Attribute directives decorate an existing element, so the body
	// opens with the bare attribute instead of a new tag.
	attribute := stripAttributeBrackets(m.Selector)

	inputs := namedProperties(m.Inputs)
	outputs := namedProperties(m.Outputs)

	body := make([]string, 0, len(inputs)+len(outputs)+2)
	body = append(body, attribute)

	next := 1
	for _, p := range inputs {
		body = append(body, inputLine(p, next))
		next++
	}
	for _, p := range outputs {
		body = append(body, outputLine(p, next))
		next++
	}
	body = append(body, "$"+strconv.Itoa(next))

	return titleFromClassName(m.ClassName) + " Directive", Snippet{
		Body:        body,
		Description: fmt.Sprintf("A directive snippet for %s.", titleFromClassName(m.ClassName)),
		Prefix:      []string{attribute},
		Scope:       markupScope,
	}, true
}

func pipeSnippet(m *extractor.PipeMetadata) (string, Snippet, bool) {
	if m.Name == "" {
		return "", Snippet{}, false
	}

	return titleFromClassName(m.ClassName) + " Pipe", Snippet{
		Body:        []string{fmt.Sprintf("{{ $1 | %s$2 }}", m.Name)},
		Description: fmt.Sprintf("A pipe snippet for %s.", titleFromClassName(m.ClassName)),
		Prefix:      []string{m.Name, "| " + m.Name},
		Scope:       markupScope,
	}, true
}

// namedProperties drops properties whose name resolved to empty. They
// are removed before any placeholder index is handed out, so they never
// consume a tab stop.
func namedProperties(props []extractor.Property) []extractor.Property {
	named := make([]extractor.Property, 0, len(props))
	for _, p := range props {
		if p.Name != "" {
			named = append(named, p)
		}
	}
	return named
}

// inputLine renders an attribute binding. Boolean inputs get a choice
// placeholder so the editor offers true/false directly.
func inputLine(p extractor.Property, index int) string {
	if p.Type == extractor.TypeBoolean {
		return fmt.Sprintf("  [%s]=\"${%d|true,false|}\"", p.Name, index)
	}
	return fmt.Sprintf("  [%s]=\"$%d\"", p.Name, index)
}

// outputLine renders an event binding with a conventional handler name
// derived from the output property.
func outputLine(p extractor.Property, index int) string {
	return fmt.Sprintf("  (%s)=\"$%d:on%s($event)\"", p.Name, index, upperFirst(p.Name))
}
