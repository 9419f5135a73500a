// Package validate implements the declarative field validation engine.
package validate

// Result is the outcome of validating a single field. Errors holds the
// message of every failing rule, in rule-declaration order; Errors[0] is
// the message shown first by convention.
type Result struct {
	Valid  bool
	Errors []string
}

// Schema maps a field name to its ordered rule list.
type Schema map[string][]Rule

// Field evaluates every rule against value in declaration order and
// collects all failing messages. The result is valid iff no rule failed.
func Field(value string, rules []Rule) Result {
	var errs []string
	for _, rule := range rules {
		if !rule.Test(value) {
			errs = append(errs, rule.Message)
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Form validates every field present in schema. A value absent from values
// is treated as the empty string. Fields absent from schema are not
// validated and are absent from the result.
func Form(values map[string]string, schema Schema) map[string]Result {
	results := make(map[string]Result, len(schema))
	for field, rules := range schema {
		results[field] = Field(values[field], rules)
	}
	return results
}

// FormValid reports whether every result is valid. Vacuously true for an
// empty map.
func FormValid(results map[string]Result) bool {
	for _, r := range results {
		if !r.Valid {
			return false
		}
	}
	return true
}
