package extract

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// FieldRule is one independent pattern-plus-fallback unit. A rule either
// matches its pattern and populates the mapped fields, or resolves to its
// declared fallbacks. Rules never depend on each other's outcome.
type FieldRule struct {
	// Name identifies the rule in logs and tests.
	Name string
	// Pattern is the primary regex. Capture group i+1 populates Captures[i].
	Pattern string
	// AltPattern is an optional narrower pattern tried when Pattern misses.
	// A match applies AltValues instead of captured text.
	AltPattern string
	// Captures maps capture groups to field names, in group order.
	Captures []string
	// SetOnMatch assigns fixed values when the primary pattern matches,
	// for presence-flag rules without capture groups.
	SetOnMatch map[string]string
	// AltValues assigns fixed values when only AltPattern matches.
	AltValues map[string]string
	// Fallbacks assigns values when neither pattern matches. Fields not
	// listed here are left absent.
	Fallbacks map[string]string
	// Reassemble collapses spaced-out captured text back to readable form.
	Reassemble bool
	// Numeric lists captured fields that must parse as decimals. An
	// unparseable capture counts as a failed match.
	Numeric []string
}

type compiledRule struct {
	FieldRule
	re    *regexp.Regexp
	altRE *regexp.Regexp
}

// Extractor applies an ordered set of field rules against normalized text.
// It holds no per-document state; a single Extractor may serve any number
// of concurrent extraction passes.
type Extractor struct {
	rules []compiledRule
}

// NewExtractor compiles the given rule set. An invalid pattern is a
// construction error, never a per-document one.
func NewExtractor(rules []FieldRule) (*Extractor, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: invalid pattern: %w", rule.Name, err)
		}
		cr := compiledRule{FieldRule: rule, re: re}
		if rule.AltPattern != "" {
			altRE, err := regexp.Compile(rule.AltPattern)
			if err != nil {
				return nil, fmt.Errorf("rule %q: invalid alternate pattern: %w", rule.Name, err)
			}
			cr.altRE = altRE
		}
		compiled = append(compiled, cr)
	}
	return &Extractor{rules: compiled}, nil
}

// NewDefaultExtractor compiles the default Shopify order rule set.
func NewDefaultExtractor(defaults RuleDefaults) (*Extractor, error) {
	return NewExtractor(DefaultRules(defaults))
}

// Extract evaluates every rule against the normalized text and returns the
// populated field map. A rule that fails to match applies its fallbacks;
// no rule failure ever aborts evaluation of the remaining rules.
func (e *Extractor) Extract(text string) Fields {
	fields := make(Fields, len(e.rules))
	for _, rule := range e.rules {
		rule.apply(text, fields)
	}
	return fields
}

// Rules returns the names of the compiled rules, in evaluation order.
func (e *Extractor) Rules() []string {
	names := make([]string, len(e.rules))
	for i, rule := range e.rules {
		names[i] = rule.Name
	}
	return names
}

func (r *compiledRule) apply(text string, fields Fields) {
	if match := r.re.FindStringSubmatch(text); match != nil {
		if r.populate(match, fields) {
			return
		}
	}
	if r.altRE != nil && r.altRE.MatchString(text) {
		for field, value := range r.AltValues {
			fields[field] = value
		}
		return
	}
	for field, value := range r.Fallbacks {
		fields[field] = value
	}
}

// populate writes captured values into fields. It returns false when a
// numeric capture does not parse, which counts as a failed match.
func (r *compiledRule) populate(match []string, fields Fields) bool {
	values := make(map[string]string, len(r.Captures)+len(r.SetOnMatch))
	for i, field := range r.Captures {
		if i+1 >= len(match) {
			return false
		}
		value := match[i+1]
		if r.Reassemble {
			value = CollapseSpaced(value)
		}
		if r.isNumeric(field) && !parseableDecimal(value) {
			return false
		}
		values[field] = value
	}
	for field, value := range r.SetOnMatch {
		values[field] = value
	}
	for field, value := range values {
		fields[field] = value
	}
	return true
}

func (r *compiledRule) isNumeric(field string) bool {
	for _, f := range r.Numeric {
		if f == field {
			return true
		}
	}
	return false
}

func parseableDecimal(s string) bool {
	_, err := decimal.NewFromString(s)
	return err == nil
}
