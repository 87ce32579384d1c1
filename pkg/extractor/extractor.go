// Package extractor locates decorator-annotated class declarations in
// TypeScript and JavaScript sources and extracts snippet metadata from
// them: the class name, its selector or pipe name, and its bound input
// and output properties with resolved types.
//
// Extraction is deliberately permissive: empty input, unparsable input,
// a missing class, or a missing role decorator all yield a nil Metadata
// rather than an error, so batch callers can feed mixed directories
// without per-file error handling.
package extractor

import (
	"fmt"
	"log/slog"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/Coderrob/angular-snippet-generator/pkg/parser"
)

// The five decorator names extraction matches. Matching is by bare
// identifier only, with no import resolution: a project-local symbol
// named Component is indistinguishable from the framework's.
const (
	decoratorComponent = "Component"
	decoratorDirective = "Directive"
	decoratorPipe      = "Pipe"
	decoratorInput     = "Input"
	decoratorOutput    = "Output"
)

// roleDecorators maps each artifact role to its class decorator.
var roleDecorators = map[Role]string{
	RoleComponent: decoratorComponent,
	RoleDirective: decoratorDirective,
	RolePipe:      decoratorPipe,
}

// Extractor turns source text into artifact metadata. Only the first
// class-like declaration in document order is examined; everything
// after it is ignored.
type Extractor struct {
	pm     *parser.Manager
	logger *slog.Logger
}

// NewExtractor creates an Extractor on top of a parser manager.
func NewExtractor(pm *parser.Manager, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		pm:     pm,
		logger: logger,
	}
}

// Extract probes the first class-like declaration for the Component,
// Directive, and Pipe decorators in that priority order and returns
// metadata for the first role found. A nil Metadata with a nil error
// means the source has nothing to extract.
func (e *Extractor) Extract(source []byte, lang parser.Language) (Metadata, error) {
	return e.extract(source, lang, "")
}

// ExtractComponent extracts component metadata, or nil when the first
// class is not decorated as a component. Unlike Extract it never falls
// back to another role.
func (e *Extractor) ExtractComponent(source []byte, lang parser.Language) (*ComponentMetadata, error) {
	meta, err := e.extract(source, lang, RoleComponent)
	if err != nil || meta == nil {
		return nil, err
	}
	return meta.(*ComponentMetadata), nil
}

// ExtractDirective extracts directive metadata, or nil when the first
// class is not decorated as a directive.
func (e *Extractor) ExtractDirective(source []byte, lang parser.Language) (*DirectiveMetadata, error) {
	meta, err := e.extract(source, lang, RoleDirective)
	if err != nil || meta == nil {
		return nil, err
	}
	return meta.(*DirectiveMetadata), nil
}

// ExtractPipe extracts pipe metadata, or nil when the first class is
// not decorated as a pipe.
func (e *Extractor) ExtractPipe(source []byte, lang parser.Language) (*PipeMetadata, error) {
	meta, err := e.extract(source, lang, RolePipe)
	if err != nil || meta == nil {
		return nil, err
	}
	return meta.(*PipeMetadata), nil
}

// ExtractFile extracts metadata from a file's contents, detecting the
// grammar from the file extension.
func (e *Extractor) ExtractFile(source []byte, filePath string) (Metadata, error) {
	lang := parser.DetectLanguage(filePath)
	if lang == parser.LanguageUnknown {
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}
	return e.Extract(source, lang)
}

// extract runs one extraction attempt. An empty filter means combined
// detection: roles are probed in priority order component, directive,
// pipe. A non-empty filter requires that exact role on the class.
func (e *Extractor) extract(source []byte, lang parser.Language, filter Role) (Metadata, error) {
	if len(source) == 0 {
		return nil, nil
	}

	tree, err := e.pm.Parse(source, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	class := findFirst(tree.RootNode(), isClassLike)
	if class == nil {
		return nil, nil
	}

	decorators := classDecorators(class)

	roles := []Role{RoleComponent, RoleDirective, RolePipe}
	if filter != "" {
		roles = []Role{filter}
	}

	for _, role := range roles {
		decorator := findDecorator(decorators, roleDecorators[role], source)
		if decorator == nil {
			continue
		}
		return buildMetadata(role, decorator, class, source), nil
	}

	return nil, nil
}

// buildMetadata assembles the metadata value for a detected role. An
// empty selector or pipe name still builds successfully; synthesis
// treats it as a skip condition later.
func buildMetadata(role Role, decorator, class *ts.Node, source []byte) Metadata {
	className := classIdentifier(class, source)

	switch role {
	case RoleComponent:
		inputs, outputs := classProperties(class, source)
		return &ComponentMetadata{
			ClassName: className,
			Selector:  decoratorObjectString(decorator, "selector", source),
			Inputs:    inputs,
			Outputs:   outputs,
		}

	case RoleDirective:
		inputs, outputs := classProperties(class, source)
		return &DirectiveMetadata{
			ClassName: className,
			Selector:  decoratorObjectString(decorator, "selector", source),
			Inputs:    inputs,
			Outputs:   outputs,
		}

	case RolePipe:
		return &PipeMetadata{
			ClassName: className,
			Name:      decoratorObjectString(decorator, "name", source),
		}
	}

	return nil
}

// classIdentifier returns the declared class name, or "" for anonymous
// class expressions.
func classIdentifier(class *ts.Node, source []byte) string {
	name := class.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	return name.Utf8Text(source)
}

// classProperties walks the class body's field declarations and
// get-accessors and collects @Input and @Output members. Every
// matching decorator contributes an entry, so a member carrying two
// @Input decorators yields two inputs. The returned slices are never
// nil.
func classProperties(class *ts.Node, source []byte) (inputs, outputs []Property) {
	inputs = []Property{}
	outputs = []Property{}

	body := class.ChildByFieldName("body")
	if body == nil {
		return inputs, outputs
	}

	for i := uint(0); i < body.ChildCount(); i++ {
		member := body.Child(i)
		switch member.Kind() {
		case "public_field_definition", "field_definition":
			// Field declarations. The TypeScript grammar names plain
			// fields public_field_definition, the JavaScript grammar
			// field_definition.
		case "method_definition":
			if !isGetAccessor(member) {
				continue
			}
		default:
			continue
		}

		for j := uint(0); j < member.ChildCount(); j++ {
			decorator := member.Child(j)
			if decorator.Kind() != "decorator" {
				continue
			}
			switch decoratorName(decorator, source) {
			case decoratorInput:
				inputs = append(inputs, Property{
					Name: propertyName(member, decorator, source),
					Type: resolveType(member, source),
				})
			case decoratorOutput:
				outputs = append(outputs, Property{
					Name: propertyName(member, decorator, source),
					Type: resolveType(member, source),
				})
			}
		}
	}

	return inputs, outputs
}

// propertyName resolves the bound name of a member: the decorator's
// string-literal alias when present, otherwise the member's own
// identifier. Computed and otherwise non-plain member names resolve to
// "" and are later excluded from placeholder allocation.
func propertyName(member, decorator *ts.Node, source []byte) string {
	if alias, ok := decoratorAlias(decorator, source); ok {
		return alias
	}

	name := member.ChildByFieldName("name")
	if name == nil {
		// The JavaScript grammar names the field "property".
		name = member.ChildByFieldName("property")
	}
	if name == nil || name.Kind() != "property_identifier" {
		return ""
	}
	return name.Utf8Text(source)
}

// isGetAccessor reports whether a method_definition is a get-accessor.
// The grammar marks accessors with a bare "get" token child.
func isGetAccessor(member *ts.Node) bool {
	for i := uint(0); i < member.ChildCount(); i++ {
		if member.Child(i).Kind() == "get" {
			return true
		}
	}
	return false
}
