package extractor

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// findFirst returns the first node satisfying pred in pre-order (parent
// before children, children in declaration order), or nil if none
// matches. Traversal stops at the first match.
func findFirst(node *ts.Node, pred func(*ts.Node) bool) *ts.Node {
	if node == nil {
		return nil
	}
	if pred(node) {
		return node
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := findFirst(node.Child(i), pred); found != nil {
			return found
		}
	}
	return nil
}

// isClassLike reports whether a node is a class declaration or class
// expression.
func isClassLike(node *ts.Node) bool {
	switch node.Kind() {
	case "class_declaration", "abstract_class_declaration", "class":
		return true
	}
	return false
}

// objectProperty returns the pair node for the given key in an object
// literal, or nil. Only explicit key:value pairs match; shorthand
// properties ({ name }) and quoted or computed keys are skipped since
// the key text is compared verbatim.
func objectProperty(object *ts.Node, name string, source []byte) *ts.Node {
	if object == nil || object.Kind() != "object" {
		return nil
	}
	for i := uint(0); i < object.ChildCount(); i++ {
		child := object.Child(i)
		if child.Kind() != "pair" {
			continue
		}
		key := child.ChildByFieldName("key")
		if key != nil && key.Utf8Text(source) == name {
			return child
		}
	}
	return nil
}

// classDecorators returns the decorator nodes attached to a class in
// document order. Decorators written before an export keyword attach to
// the wrapping export_statement, so that parent is scanned too.
func classDecorators(class *ts.Node) []*ts.Node {
	var decorators []*ts.Node
	collect := func(node *ts.Node) {
		for i := uint(0); i < node.ChildCount(); i++ {
			if child := node.Child(i); child.Kind() == "decorator" {
				decorators = append(decorators, child)
			}
		}
	}
	if parent := class.Parent(); parent != nil && parent.Kind() == "export_statement" {
		collect(parent)
	}
	collect(class)
	return decorators
}

// decoratorName returns the bare identifier a decorator invokes: "Input"
// for both @Input and @Input('alias'). Member-expression decorators
// (@ng.Component) yield "" and never match.
func decoratorName(decorator *ts.Node, source []byte) string {
	for i := uint(0); i < decorator.ChildCount(); i++ {
		child := decorator.Child(i)
		switch child.Kind() {
		case "identifier":
			return child.Utf8Text(source)
		case "call_expression":
			if fn := child.ChildByFieldName("function"); fn != nil && fn.Kind() == "identifier" {
				return fn.Utf8Text(source)
			}
		}
	}
	return ""
}

// findDecorator returns the first decorator with the given bare name.
func findDecorator(decorators []*ts.Node, name string, source []byte) *ts.Node {
	for _, decorator := range decorators {
		if decoratorName(decorator, source) == name {
			return decorator
		}
	}
	return nil
}

// decoratorCall returns the call_expression of a decorator, or nil for
// a bare decorator like @Input.
func decoratorCall(decorator *ts.Node) *ts.Node {
	for i := uint(0); i < decorator.ChildCount(); i++ {
		if child := decorator.Child(i); child.Kind() == "call_expression" {
			return child
		}
	}
	return nil
}

// decoratorObjectString scans a decorator's call arguments in order for
// the first object literal containing an explicit property named key and
// returns that property's string value. The first object containing the
// key decides: a non-string value there yields "" rather than falling
// through to later arguments.
func decoratorObjectString(decorator *ts.Node, key string, source []byte) string {
	call := decoratorCall(decorator)
	if call == nil {
		return ""
	}
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return ""
	}
	for i := uint(0); i < args.ChildCount(); i++ {
		arg := args.Child(i)
		if arg.Kind() != "object" {
			continue
		}
		pair := objectProperty(arg, key, source)
		if pair == nil {
			continue
		}
		value, ok := stringLiteralText(pair.ChildByFieldName("value"), source)
		if !ok {
			return ""
		}
		return value
	}
	return ""
}

// decoratorAlias returns the single string-literal argument of a member
// decorator call: "appHighlight" for @Input('appHighlight'). ok is
// false when the decorator has no arguments or its first argument is
// not a plain string literal.
func decoratorAlias(decorator *ts.Node, source []byte) (string, bool) {
	call := decoratorCall(decorator)
	if call == nil {
		return "", false
	}
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return "", false
	}
	for i := uint(0); i < args.ChildCount(); i++ {
		arg := args.Child(i)
		switch arg.Kind() {
		case "(", ")", ",", "comment":
			continue
		case "string":
			return stringFragments(arg, source), true
		default:
			return "", false
		}
	}
	return "", false
}

// stringLiteralText returns the cooked text of a plain string literal
// or a template literal with no interpolation. ok is false for any
// other node, including template literals with substitutions.
func stringLiteralText(node *ts.Node, source []byte) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Kind() {
	case "string":
		return stringFragments(node, source), true
	case "template_string":
		for i := uint(0); i < node.ChildCount(); i++ {
			if node.Child(i).Kind() == "template_substitution" {
				return "", false
			}
		}
		return stringFragments(node, source), true
	}
	return "", false
}

// stringFragments joins the string_fragment children of a string or
// template literal. An empty literal has no fragments and yields "".
func stringFragments(node *ts.Node, source []byte) string {
	var sb strings.Builder
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child.Kind() == "string_fragment" {
			sb.WriteString(child.Utf8Text(source))
		}
	}
	return sb.String()
}
