// Package validate implements the declarative field validation engine.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Rule is a single validation predicate with its failure message.
// Rules are immutable once constructed.
type Rule struct {
	// Test reports whether the value satisfies the rule.
	Test func(value string) bool

	// Message is shown when Test returns false.
	Message string
}

// Default failure messages. Kept verbatim where the UI compares display
// strings.
const (
	msgRequired = "This field is required"
	msgEmail    = "Please enter a valid email address"
	msgURL      = "Please enter a valid URL"
	msgMatch    = "Values do not match"
	msgPattern  = "Invalid format"
)

// emailPattern is a deliberately permissive check: one "@", one dot in the
// domain. Stricter validation would reject addresses the backend accepts.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// pick returns the custom message when one was supplied.
func pick(def string, msg []string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return def
}

// Required fails when the trimmed value is empty.
func Required(msg ...string) Rule {
	return Rule{
		Test:    func(value string) bool { return strings.TrimSpace(value) != "" },
		Message: pick(msgRequired, msg),
	}
}

// MinLength fails when the untrimmed value is shorter than min.
func MinLength(min int, msg ...string) Rule {
	return Rule{
		Test:    func(value string) bool { return len(value) >= min },
		Message: pick(fmt.Sprintf("Must be at least %d characters", min), msg),
	}
}

// MaxLength fails when the untrimmed value is longer than max.
func MaxLength(max int, msg ...string) Rule {
	return Rule{
		Test:    func(value string) bool { return len(value) <= max },
		Message: pick(fmt.Sprintf("Must not exceed %d characters", max), msg),
	}
}

// Email fails when the value does not look like an email address.
func Email(msg ...string) Rule {
	return Rule{
		Test:    func(value string) bool { return emailPattern.MatchString(value) },
		Message: pick(msgEmail, msg),
	}
}

// URL fails when the value does not parse as an absolute URL with both a
// scheme and an authority. A malformed value is a failed rule, not an
// error condition.
func URL(msg ...string) Rule {
	return Rule{
		Test: func(value string) bool {
			u, err := url.Parse(value)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Message: pick(msgURL, msg),
	}
}

// Match fails when the value is not exactly equal to other. The comparison
// value is captured at construction time, so callers validating against a
// live field (confirm-password) must rebuild the rule on every pass; see
// form.SchemaFunc.
func Match(other string, msg ...string) Rule {
	return Rule{
		Test:    func(value string) bool { return value == other },
		Message: pick(msgMatch, msg),
	}
}

// Pattern fails when the value does not match re.
func Pattern(re *regexp.Regexp, msg ...string) Rule {
	return Rule{
		Test:    func(value string) bool { return re.MatchString(value) },
		Message: pick(msgPattern, msg),
	}
}
