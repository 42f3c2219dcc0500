package domain

import (
	"regexp"
	"strings"
)

// DefaultLogPredicates builds the layered logging heuristics from the
// rule table. The layers, in order: rendered call-text matching, known
// diagnostic-print callees, the blanket line-substring fallback, and the
// entry-point file override. Any single layer matching marks the literal
// as log noise.
func DefaultLogPredicates(rules RuleSet) []LogPredicate {
	return []LogPredicate{
		CallTextPredicate(rules),
		DiagnosticCalleePredicate(rules),
		LineSubstringPredicate(rules),
		EntryFilePredicate(rules),
	}
}

// CallTextPredicate matches the rendered text of the enclosing call
// against logger-shaped patterns: <recv>.debug(...)-style methods, a bare
// log(...) call, or access through a logger-named member chain (one level
// of self. qualification included). Only fires when the literal is the
// call's sole argument.
func CallTextPredicate(rules RuleSet) LogPredicate {
	methodRe := regexp.MustCompile(`\.(?:` + alternation(rules.LogMethods) + `)\s*\(`)
	memberRe := regexp.MustCompile(`(?:^|\W)(?:` + alternation(rules.LoggerMembers) + `)\.`)
	bareLogRe := regexp.MustCompile(`(?:^|\W)log\s*\(`)

	return func(_ string, ctx LiteralContext) bool {
		if !ctx.InCall || ctx.ArgCount != 1 {
			return false
		}

		return methodRe.MatchString(ctx.CallText) ||
			memberRe.MatchString(ctx.CallText) ||
			bareLogRe.MatchString(ctx.CallText)
	}
}

// DiagnosticCalleePredicate matches direct calls to well-known
// diagnostic-print functions taking the literal as sole argument.
func DiagnosticCalleePredicate(rules RuleSet) LogPredicate {
	return func(_ string, ctx LiteralContext) bool {
		if !ctx.InCall || ctx.ArgCount != 1 {
			return false
		}

		for _, name := range rules.LogFuncs {
			if ctx.CalleeName == name {
				return true
			}
		}

		return false
	}
}

// LineSubstringPredicate is the conservative blanket fallback: the
// literal's whole source line is checked, case-insensitively, for
// logging-flavored substrings. Known to over-suppress UI strings that
// merely contain those substrings.
func LineSubstringPredicate(rules RuleSet) LogPredicate {
	lowered := make([]string, len(rules.LogLineSubstrings))
	for i, s := range rules.LogLineSubstrings {
		lowered[i] = strings.ToLower(s)
	}

	return func(_ string, ctx LiteralContext) bool {
		line := strings.ToLower(ctx.LineText)
		for _, s := range lowered {
			if strings.Contains(line, s) {
				return true
			}
		}

		return false
	}
}

// EntryFilePredicate excludes known log-message texts unconditionally
// inside application-entry-point files.
func EntryFilePredicate(rules RuleSet) LogPredicate {
	return func(text string, ctx LiteralContext) bool {
		if !containsString(rules.EntryFileNames, ctx.File) {
			return false
		}

		for _, known := range rules.EntryFileLogTexts {
			if strings.Contains(text, known) {
				return true
			}
		}

		return false
	}
}

func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}

	return strings.Join(quoted, "|")
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
