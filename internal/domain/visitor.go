package domain

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/locsift/locsift/internal/model"
)

// Tree-sitter node kinds the visitor reacts to.
const (
	kindLineString      = "line_string_literal"
	kindMultiLineString = "multi_line_string_literal"
	kindRawString       = "raw_string_literal"
	kindRegexLiteral    = "regex_literal"

	kindInterpolation    = "interpolated_expression"
	kindRawInterpolation = "raw_str_interpolation"

	kindCallExpr     = "call_expression"
	kindCallSuffix   = "call_suffix"
	kindValueArgs    = "value_arguments"
	kindValueArg     = "value_argument"
	kindEscapedChar  = "str_escaped_char"
	kindFunctionDecl = "function_declaration"
	kindClassDecl    = "class_declaration"
	kindProtocolDecl = "protocol_declaration"
)

// callText longer than this is truncated before pattern matching; logging
// heuristics only need the call head.
const maxCallTextLen = 512

// fileVisitor walks one file's syntax tree, extracts literal occurrences,
// and runs each through the classifier. It accumulates records scoped to
// the call and touches no shared state.
type fileVisitor struct {
	classifier *Classifier
	file       m.Path
	src        []byte
	lines      []string
	records    []m.StringRecord
}

func newFileVisitor(classifier *Classifier, file m.Path, src []byte) *fileVisitor {
	return &fileVisitor{
		classifier: classifier,
		file:       file,
		src:        src,
		lines:      strings.Split(string(src), "\n"),
	}
}

// Visit walks the tree rooted at root and returns the records that passed
// classification, in source order.
func (v *fileVisitor) Visit(root *sitter.Node) []m.StringRecord {
	v.walk(root)
	return v.records
}

func (v *fileVisitor) walk(n *sitter.Node) {
	if isLiteralKind(n.Type()) {
		// A literal's contents are fully captured by segment decoding;
		// never descend into its children.
		v.visitLiteral(n)
		return
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		v.walk(n.NamedChild(i))
	}
}

func isLiteralKind(kind string) bool {
	switch kind {
	case kindLineString, kindMultiLineString, kindRawString, kindRegexLiteral:
		return true
	default:
		return false
	}
}

func (v *fileVisitor) visitLiteral(n *sitter.Node) {
	lit := RawLiteral{
		Raw:      trimDelimiters(n.Content(v.src), n.Type()),
		Segments: v.decodeSegments(n),
	}

	verdict := v.classifier.Classify(lit, v.contextFor(n))
	if !verdict.Include {
		return
	}

	v.records = append(v.records, m.StringRecord{
		File:           v.file,
		Line:           int(n.StartPoint().Row) + 1,
		Column:         int(n.StartPoint().Column) + 1,
		RawText:        lit.Raw,
		NormalizedText: verdict.NormalizedText,
		IsLocalized:    verdict.IsLocalized,
	})
}

// decodeSegments splits a literal node into text and interpolation
// segments in source order. Text segments have escape sequences decoded;
// interpolation segments carry no content, they become the placeholder.
func (v *fileVisitor) decodeSegments(n *sitter.Node) []Segment {
	var segments []Segment
	last := int(n.NamedChildCount()) - 1

	for i := 0; i <= last; i++ {
		child := n.NamedChild(i)

		switch child.Type() {
		case kindInterpolation, kindRawInterpolation:
			segments = append(segments, Segment{Interpolated: true})
		case kindEscapedChar:
			segments = append(segments, Segment{Text: decodeEscape(child.Content(v.src))})
		default:
			text := trimSegmentEdges(child.Content(v.src), n.Type(), i == 0, i == last)
			segments = append(segments, Segment{Text: text})
		}
	}

	return segments
}

// trimSegmentEdges strips the delimiter residue the grammar leaves inside
// the edge text nodes: raw-string text keeps its #"/"# delimiters, and
// multi-line text keeps the newline adjacent to each """ fence.
func trimSegmentEdges(text, kind string, first, last bool) string {
	switch kind {
	case kindRawString:
		if first {
			text = strings.TrimPrefix(strings.TrimLeft(text, "#"), `"`)
		}
		if last {
			text = strings.TrimSuffix(strings.TrimRight(text, "#"), `"`)
		}
	case kindMultiLineString:
		if first {
			text = strings.TrimLeft(text, "\n")
		}
		if last {
			text = strings.TrimRight(text, "\n")
		}
	}

	return text
}

// contextFor gathers the syntactic surroundings of a literal: its source
// line and, when present, the nearest enclosing call expression.
func (v *fileVisitor) contextFor(n *sitter.Node) LiteralContext {
	ctx := LiteralContext{
		File:     filepath.Base(string(v.file)),
		ArgIndex: -1,
	}

	row := int(n.StartPoint().Row)
	if row < len(v.lines) {
		ctx.LineText = v.lines[row]
	}

	call := enclosingCall(n)
	if call == nil {
		return ctx
	}

	ctx.InCall = true
	ctx.CallText = truncate(call.Content(v.src), maxCallTextLen)

	if callee := call.NamedChild(0); callee != nil {
		ctx.CalleeName = callee.Content(v.src)
	}

	ctx.ArgIndex, ctx.ArgCount = argumentPosition(call, n)

	return ctx
}

// enclosingCall ascends from n to the nearest call expression, stopping
// at declaration boundaries so a literal in a nested function body is not
// attributed to an outer call.
func enclosingCall(n *sitter.Node) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Type() {
		case kindCallExpr:
			return p
		case kindFunctionDecl, kindClassDecl, kindProtocolDecl:
			return nil
		}
	}

	return nil
}

// argumentPosition locates the literal among the call's value arguments.
// Returns (-1, count) when the literal is not itself an argument (it may
// sit in the callee expression or a trailing closure).
func argumentPosition(call, literal *sitter.Node) (index, count int) {
	index = -1

	suffix := namedChildOfKind(call, kindCallSuffix)
	if suffix == nil {
		return index, 0
	}

	args := namedChildOfKind(suffix, kindValueArgs)
	if args == nil {
		return index, 0
	}

	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		if arg.Type() != kindValueArg {
			continue
		}

		if contains(arg, literal) {
			index = count
		}

		count++
	}

	return index, count
}

func namedChildOfKind(n *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == kind {
			return child
		}
	}

	return nil
}

// contains reports whether target's byte span lies within n's span.
func contains(n, target *sitter.Node) bool {
	return n.StartByte() <= target.StartByte() && target.EndByte() <= n.EndByte()
}

// trimDelimiters strips the quoting syntax from a literal's source text,
// leaving the content (interpolation syntax included) as written.
func trimDelimiters(raw, kind string) string {
	switch kind {
	case kindMultiLineString:
		raw = strings.TrimPrefix(raw, `"""`)
		raw = strings.TrimSuffix(raw, `"""`)
		return strings.Trim(raw, "\n")
	case kindRawString:
		raw = strings.TrimLeft(raw, "#")
		raw = strings.TrimRight(raw, "#")
		raw = strings.TrimPrefix(raw, `"`)
		return strings.TrimSuffix(raw, `"`)
	case kindRegexLiteral:
		raw = strings.TrimPrefix(raw, "/")
		return strings.TrimSuffix(raw, "/")
	default:
		raw = strings.TrimPrefix(raw, `"`)
		return strings.TrimSuffix(raw, `"`)
	}
}

// decodeEscape maps a Swift escape sequence to its character value.
// Unknown sequences pass through unchanged.
func decodeEscape(esc string) string {
	switch esc {
	case `\n`:
		return "\n"
	case `\t`:
		return "\t"
	case `\r`:
		return "\r"
	case `\"`:
		return `"`
	case `\'`:
		return "'"
	case `\\`:
		return `\`
	case `\0`:
		return "\x00"
	default:
		return esc
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	// Back up to a rune boundary so a multi-byte character is never split.
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
