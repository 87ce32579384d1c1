package extractor

// Role discriminates the three artifact kinds extraction can recognize.
type Role string

const (
	// RoleComponent marks a class that introduces a new markup tag.
	RoleComponent Role = "component"
	// RoleDirective marks a class that augments existing markup via an
	// attribute selector.
	RoleDirective Role = "directive"
	// RolePipe marks a class implementing a named template transform.
	RolePipe Role = "pipe"
)

// Primitive type tags the resolver can produce. Any other resolved type
// is an opaque type name carried verbatim from the source.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeNull    = "null"
	TypeAny     = "any"
)

// Property is one bindable member of a component or directive class.
// Name is the decorator alias when one is given, otherwise the declared
// identifier; a computed member name leaves it empty. Type is a
// primitive tag or an opaque type name.
type Property struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Metadata is the closed set of artifact shapes extraction produces.
// The unexported marker keeps the set sealed to this package so the
// snippet synthesizer can dispatch exhaustively over the three concrete
// types.
type Metadata interface {
	// Role reports which variant this is.
	Role() Role
	// Class returns the declared class name, empty for anonymous classes.
	Class() string

	isMetadata()
}

// ComponentMetadata describes a component class: a tag-like construct
// bindable via attributes and events.
type ComponentMetadata struct {
	ClassName string     `json:"className"`
	Selector  string     `json:"selector"`
	Inputs    []Property `json:"inputs"`
	Outputs   []Property `json:"outputs"`
}

func (m *ComponentMetadata) Role() Role    { return RoleComponent }
func (m *ComponentMetadata) Class() string { return m.ClassName }
func (*ComponentMetadata) isMetadata()     {}

// DirectiveMetadata describes a directive class. Same shape as a
// component, but the selector is attribute-style (usually bracketed)
// and synthesis renders it without a tag wrapper.
type DirectiveMetadata struct {
	ClassName string     `json:"className"`
	Selector  string     `json:"selector"`
	Inputs    []Property `json:"inputs"`
	Outputs   []Property `json:"outputs"`
}

func (m *DirectiveMetadata) Role() Role    { return RoleDirective }
func (m *DirectiveMetadata) Class() string { return m.ClassName }
func (*DirectiveMetadata) isMetadata()     {}

// PipeMetadata describes a pipe class: a named single-value transform
// with no bound properties.
type PipeMetadata struct {
	ClassName string `json:"className"`
	Name      string `json:"name"`
}

func (m *PipeMetadata) Role() Role    { return RolePipe }
func (m *PipeMetadata) Class() string { return m.ClassName }
func (*PipeMetadata) isMetadata()     {}
