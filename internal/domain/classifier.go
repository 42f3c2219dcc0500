// Package domain contains the core extraction and classification pipeline.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment is one decoded piece of a literal: either verbatim text or an
// interpolated expression.
type Segment struct {
	Text         string
	Interpolated bool
}

// RawLiteral is a literal occurrence as extracted by the file visitor,
// before classification.
type RawLiteral struct {
	// Raw is the literal exactly as written, delimiters stripped,
	// interpolation syntax intact.
	Raw string
	// Segments are the decoded pieces in source order.
	Segments []Segment
}

// LiteralContext is the syntactic context a literal occurs in. It is a
// small, explicit object so logging heuristics can be expressed as
// swappable predicates instead of hard-coded string matching.
type LiteralContext struct {
	// File is the base name of the file the literal occurs in.
	File string
	// LineText is the full source line containing the literal's start.
	LineText string
	// InCall is true when the literal sits inside a call expression.
	InCall bool
	// CalleeName is the rendered callee of that call ("showAlert",
	// "logger.info"). Empty when InCall is false.
	CalleeName string
	// CallText is the rendered text of the whole enclosing call.
	CallText string
	// ArgIndex is the literal's position among the call's arguments,
	// -1 when the literal is not itself an argument.
	ArgIndex int
	// ArgCount is the call's argument count.
	ArgCount int
}

// Verdict is the classifier's decision for one literal occurrence.
type Verdict struct {
	Include        bool
	NormalizedText string
	IsLocalized    bool
}

// LogPredicate reports whether a literal with the given normalized text
// occurs in a logging context. Predicates are independent; any one
// matching suffices.
type LogPredicate func(text string, ctx LiteralContext) bool

// Classifier decides inclusion/exclusion for literal occurrences. It is
// pure: no I/O, no shared mutable state, safe for concurrent use.
type Classifier struct {
	rules         RuleSet
	scripts       []*unicode.RangeTable
	pathPatterns  []*regexp.Regexp
	logPredicates []LogPredicate
}

// NewClassifier compiles the rule table into a Classifier. Extra
// predicates are appended after the default logging predicates; pass
// WithLogPredicates to replace the defaults entirely.
func NewClassifier(rules RuleSet, opts ...ClassifierOption) (*Classifier, error) {
	c := &Classifier{rules: rules}

	for _, name := range rules.TargetScripts {
		table, ok := unicode.Scripts[name]
		if !ok {
			return nil, fmt.Errorf("unknown unicode script: %s", name)
		}

		c.scripts = append(c.scripts, table)
	}

	for _, pattern := range rules.PathPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile path pattern %q: %w", pattern, err)
		}

		c.pathPatterns = append(c.pathPatterns, re)
	}

	c.logPredicates = DefaultLogPredicates(rules)

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ClassifierOption customizes a Classifier.
type ClassifierOption func(*Classifier)

// WithLogPredicates replaces the default logging predicates.
func WithLogPredicates(preds ...LogPredicate) ClassifierOption {
	return func(c *Classifier) {
		c.logPredicates = preds
	}
}

// Classify applies the exclusion rules in order (first match wins) and,
// for included literals, produces the normalized text plus localization
// flag. Classification never fails: an ambiguous literal resolves to a
// conservative verdict.
func (c *Classifier) Classify(lit RawLiteral, ctx LiteralContext) Verdict {
	normalized := c.Normalize(lit)

	if normalized == "" {
		return Verdict{}
	}

	if !c.containsTargetScript(normalized) {
		return Verdict{}
	}

	if c.hasReverseDomainPrefix(normalized) {
		return Verdict{}
	}

	if c.hasAssetSuffix(normalized) {
		return Verdict{}
	}

	if isAllPunctuation(normalized) {
		return Verdict{}
	}

	if isAllPictographic(normalized) {
		return Verdict{}
	}

	if c.matchesPathPattern(normalized) {
		return Verdict{}
	}

	if c.inLoggingContext(normalized, ctx) {
		return Verdict{}
	}

	localized := ctx.InCall && ctx.ArgIndex == 0 && c.isLocalizationCallee(ctx.CalleeName)

	if c.isPolicyText(normalized) {
		normalized = c.rules.PolicyMarker + normalized
	}

	return Verdict{
		Include:        true,
		NormalizedText: normalized,
		IsLocalized:    localized,
	}
}

// Normalize concatenates the literal's text segments verbatim and
// replaces each interpolated segment with the placeholder token.
func (c *Classifier) Normalize(lit RawLiteral) string {
	if len(lit.Segments) == 0 {
		return lit.Raw
	}

	var b strings.Builder

	for _, seg := range lit.Segments {
		if seg.Interpolated {
			b.WriteString(c.rules.PlaceholderToken)
			continue
		}

		b.WriteString(seg.Text)
	}

	return b.String()
}

func (c *Classifier) containsTargetScript(s string) bool {
	for _, r := range s {
		for _, table := range c.scripts {
			if unicode.Is(table, r) {
				return true
			}
		}
	}

	return false
}

func (c *Classifier) hasReverseDomainPrefix(s string) bool {
	for _, prefix := range c.rules.ReverseDomainPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func (c *Classifier) hasAssetSuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range c.rules.AssetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}

func (c *Classifier) matchesPathPattern(s string) bool {
	for _, re := range c.pathPatterns {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}

func (c *Classifier) inLoggingContext(text string, ctx LiteralContext) bool {
	for _, pred := range c.logPredicates {
		if pred(text, ctx) {
			return true
		}
	}

	return false
}

func (c *Classifier) isLocalizationCallee(callee string) bool {
	for _, name := range c.rules.LocalizationFuncs {
		if callee == name {
			return true
		}
	}

	return false
}

func (c *Classifier) isPolicyText(s string) bool {
	if utf8.RuneCountInString(s) <= c.rules.PolicyLengthThreshold {
		return false
	}

	for _, keyword := range c.rules.PolicyKeywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}

	return false
}

func isAllPunctuation(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

func isAllPictographic(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && !isPictographic(r) {
			return false
		}
	}

	return true
}

// isPictographic covers the emoji and symbol planes commonly embedded in
// UI strings.
func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x1F000 && r <= 0x1F2FF:
		return true
	case r == 0xFE0F || r == 0x200D:
		return true
	default:
		return false
	}
}
