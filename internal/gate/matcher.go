package gate

import (
	"fmt"
	"regexp"

	"github.com/designspec/designspec-web/internal/config"
)

// Rule is one ordered route pattern.
type Rule struct {
	// Pattern is a regular expression matched against the request path.
	Pattern string
	// Exclude stops interception for matching paths.
	Exclude bool
}

// DefaultRules intercept application and API routes and skip framework and static assets.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: `^/(api|trpc)(/|$)`},
		{Pattern: `^/(_next|static)/`, Exclude: true},
		{Pattern: `\.[^/]+$`, Exclude: true},
		{Pattern: `^/`},
	}
}

// RulesFromConfig converts configured rules, falling back to DefaultRules when none are set.
func RulesFromConfig(cfg config.Gate) []Rule {
	if len(cfg.Rules) == 0 {
		return DefaultRules()
	}

	rules := make([]Rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, Rule{Pattern: r.Pattern, Exclude: r.Exclude})
	}

	return rules
}

type compiledRule struct {
	re      *regexp.Regexp
	exclude bool
}

// Matcher selects intercepted paths. The first matching rule wins, paths
// matching no rule are not intercepted.
type Matcher struct {
	rules []compiledRule
}

// NewMatcher compiles rules in order.
func NewMatcher(rules []Rule) (*Matcher, error) {
	m := &Matcher{rules: make([]compiledRule, 0, len(rules))}

	for i, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("gate rule %d %q: %w", i, r.Pattern, err)
		}

		m.rules = append(m.rules, compiledRule{re: re, exclude: r.Exclude})
	}

	return m, nil
}

// Match reports whether path is intercepted.
func (m *Matcher) Match(path string) bool {
	for _, r := range m.rules {
		if r.re.MatchString(path) {
			return !r.exclude
		}
	}

	return false
}
