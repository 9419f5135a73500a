// Package form turns the pure validation engine into interactive form state.
package form

import (
	"github.com/skillshare/skillshare-go/internal/core/validate"
)

// Values maps field names to their current string values.
type Values map[string]string

// SchemaFunc builds the validation schema for the current values. It is
// invoked on every validation pass.
type SchemaFunc func(values Values) validate.Schema

// Static wraps a fixed schema as a SchemaFunc, for forms whose rules do
// not depend on other field values.
func Static(schema validate.Schema) SchemaFunc {
	return func(Values) validate.Schema { return schema }
}

// Option configures a Form.
type Option func(*Form)

// WithValidateOnChange re-validates a field on every change once it has
// been touched. Off by default: a change merely clears the stale error.
func WithValidateOnChange() Option {
	return func(f *Form) { f.validateOnChange = true }
}

// WithoutValidateOnBlur disables validation on blur (on by default).
func WithoutValidateOnBlur() Option {
	return func(f *Form) { f.validateOnBlur = false }
}

// Form holds the interactive state of one form instance. It is owned by a
// single consumer and is not safe for concurrent use.
type Form struct {
	initial Values
	values  Values
	errors  map[string]string
	touched map[string]bool

	submitting       bool
	validateOnBlur   bool
	validateOnChange bool

	schemaFn SchemaFunc
}

// New creates a Form with the given initial values and schema builder.
func New(initial Values, schemaFn SchemaFunc, opts ...Option) *Form {
	f := &Form{
		initial:        cloneValues(initial),
		values:         cloneValues(initial),
		errors:         make(map[string]string),
		touched:        make(map[string]bool),
		validateOnBlur: true,
		schemaFn:       schemaFn,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Value returns the current value of a field.
func (f *Form) Value(field string) string {
	return f.values[field]
}

// Values returns a copy of the current values.
func (f *Form) Values() Values {
	return cloneValues(f.values)
}

// Error returns the first failing message for a field, if any.
func (f *Form) Error(field string) (string, bool) {
	msg, ok := f.errors[field]
	return msg, ok
}

// Touched reports whether the field has been blurred at least once (or the
// form submitted). The flag is sticky until Reset.
func (f *Form) Touched(field string) bool {
	return f.touched[field]
}

// IsSubmitting reports whether a submit is in progress.
func (f *Form) IsSubmitting() bool {
	return f.submitting
}

// HandleChange stores a new value for a field. If validate-on-change is
// enabled and the field was already touched, the field is re-validated;
// otherwise any stale error is cleared so the edit reads as live.
func (f *Form) HandleChange(field, value string) {
	f.values[field] = value

	if f.validateOnChange && f.touched[field] {
		f.validateField(field)
		return
	}
	delete(f.errors, field)
}

// SetFieldValue programmatically sets a field value (e.g. a template
// pre-fill). Side effects are identical to HandleChange.
func (f *Form) SetFieldValue(field, value string) {
	f.HandleChange(field, value)
}

// HandleBlur marks the field touched and, unless disabled, validates it.
func (f *Form) HandleBlur(field string) {
	f.touched[field] = true
	if f.validateOnBlur {
		f.validateField(field)
	}
}

// ValidateAll validates the whole form against the current schema,
// replacing the error map wholesale. Returns true when every field passes.
func (f *Form) ValidateAll() bool {
	schema := f.schemaFn(f.values)
	results := validate.Form(f.values, schema)

	f.errors = make(map[string]string)
	for field, res := range results {
		if !res.Valid {
			f.errors[field] = res.Errors[0]
		}
	}
	return validate.FormValid(results)
}

// HandleSubmit marks every declared field touched, validates the whole
// form, and invokes onValid with a copy of the values only when validation
// passes. isSubmitting is true for the synchronous span of the call.
// Returns whether the submit proceeded.
func (f *Form) HandleSubmit(onValid func(Values)) bool {
	f.submitting = true
	defer func() { f.submitting = false }()

	for field := range f.schemaFn(f.values) {
		f.touched[field] = true
	}

	valid := f.ValidateAll()
	if valid && onValid != nil {
		onValid(f.Values())
	}
	return valid
}

// Reset restores the initial values and clears errors, touched flags, and
// the submitting flag.
func (f *Form) Reset() {
	f.values = cloneValues(f.initial)
	f.errors = make(map[string]string)
	f.touched = make(map[string]bool)
	f.submitting = false
}

func (f *Form) validateField(field string) {
	schema := f.schemaFn(f.values)
	rules, ok := schema[field]
	if !ok {
		delete(f.errors, field)
		return
	}
	res := validate.Field(f.values[field], rules)
	if res.Valid {
		delete(f.errors, field)
		return
	}
	f.errors[field] = res.Errors[0]
}

func cloneValues(v Values) Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
