package extractor

import (
	ts "github.com/tree-sitter/go-tree-sitter"
)

// resolveType computes the display type for a class member.
//
// With an explicit annotation: named types resolve to their base name,
// generics to the source text of their first type argument (one level
// of unwrapping, so EventEmitter<boolean> and Observable<string> both
// resolve to the payload type), and everything else to the annotation's
// verbatim source text. Without an annotation the initializer is
// inspected. Optional markers (tooltip?: string) are dropped; the
// resolved type is the plain annotation text.
//
// Pure function of (member, source); never fails, defaults to "any".
func resolveType(member *ts.Node, source []byte) string {
	typeNode := annotatedType(member)
	if typeNode == nil {
		if init := member.ChildByFieldName("value"); init != nil {
			return inferInitializerType(init, source)
		}
		return TypeAny
	}

	switch typeNode.Kind() {
	case "type_identifier", "nested_type_identifier":
		return typeNode.Utf8Text(source)

	case "generic_type":
		if arg := firstTypeArgument(typeNode); arg != nil {
			return arg.Utf8Text(source)
		}
		if name := typeNode.ChildByFieldName("name"); name != nil {
			return name.Utf8Text(source)
		}
		return TypeAny

	default:
		// Primitive keywords, unions, array suffixes and the rest keep
		// their literal source text.
		return typeNode.Utf8Text(source)
	}
}

// annotatedType returns the type node inside a member's annotation, or
// nil when the member has none. Fields annotate via the "type" field;
// get-accessors via "return_type". Both wrap the actual type in a
// type_annotation node after a ":" token.
func annotatedType(member *ts.Node) *ts.Node {
	annotation := member.ChildByFieldName("type")
	if annotation == nil {
		annotation = member.ChildByFieldName("return_type")
	}
	if annotation == nil {
		return nil
	}
	for i := uint(0); i < annotation.ChildCount(); i++ {
		child := annotation.Child(i)
		if child.Kind() != ":" {
			return child
		}
	}
	return nil
}

// firstTypeArgument returns the first type inside a generic_type's
// argument list (the T of EventEmitter<T>), or nil.
func firstTypeArgument(generic *ts.Node) *ts.Node {
	args := generic.ChildByFieldName("type_arguments")
	if args == nil {
		return nil
	}
	for i := uint(0); i < args.ChildCount(); i++ {
		child := args.Child(i)
		switch child.Kind() {
		case "<", ">", ",", "comment":
			continue
		}
		return child
	}
	return nil
}

// inferInitializerType guesses a member's type from its initializer
// when no annotation exists: string and numeric literals map to their
// primitive tags, boolean keywords to "boolean", array literals to the
// first element's inferred type with a "[]" suffix, and anything else
// to "any".
func inferInitializerType(init *ts.Node, source []byte) string {
	switch init.Kind() {
	case "string", "template_string":
		return TypeString
	case "number":
		return TypeNumber
	case "true", "false":
		return TypeBoolean
	case "array":
		if first := init.NamedChild(0); first != nil {
			return inferInitializerType(first, source) + "[]"
		}
		return TypeAny + "[]"
	default:
		return TypeAny
	}
}
