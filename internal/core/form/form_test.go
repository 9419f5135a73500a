package form

import (
	"testing"

	"github.com/skillshare/skillshare-go/internal/core/validate"
)

func loginSchema() SchemaFunc {
	return Static(validate.Schema{
		"email":    {validate.Required(), validate.Email()},
		"password": {validate.Required(), validate.MinLength(6)},
	})
}

// registerSchema rebuilds the confirm-password match rule from the live
// password value on every validation pass.
func registerSchema() SchemaFunc {
	return func(values Values) validate.Schema {
		return validate.Schema{
			"name":            {validate.Required()},
			"email":           {validate.Required(), validate.Email()},
			"password":        {validate.Required(), validate.MinLength(6)},
			"confirmPassword": {validate.Required(), validate.Match(values["password"])},
		}
	}
}

func TestForm_HandleBlur(t *testing.T) {
	f := New(Values{"email": "", "password": ""}, loginSchema())

	f.HandleBlur("email")

	if !f.Touched("email") {
		t.Error("blur should mark field touched")
	}
	if msg, ok := f.Error("email"); !ok || msg != "This field is required" {
		t.Errorf("Error(email) = %q, %v", msg, ok)
	}
	if f.Touched("password") {
		t.Error("other fields should stay untouched")
	}
}

func TestForm_HandleChange_ClearsStaleError(t *testing.T) {
	f := New(Values{"email": ""}, loginSchema())

	f.HandleBlur("email") // produces an error
	f.HandleChange("email", "u")

	if _, ok := f.Error("email"); ok {
		t.Error("change should clear the stale error without re-validating")
	}
	if f.Value("email") != "u" {
		t.Errorf("Value(email) = %q", f.Value("email"))
	}
}

func TestForm_ValidateOnChange(t *testing.T) {
	f := New(Values{"email": ""}, loginSchema(), WithValidateOnChange())

	// Untouched field: change still only clears errors.
	f.HandleChange("email", "bad")
	if _, ok := f.Error("email"); ok {
		t.Error("untouched field should not validate on change")
	}

	f.HandleBlur("email")
	if _, ok := f.Error("email"); !ok {
		t.Fatal("blur should validate")
	}

	f.HandleChange("email", "still-bad")
	if msg, ok := f.Error("email"); !ok || msg != "Please enter a valid email address" {
		t.Errorf("touched field should re-validate on change, got %q, %v", msg, ok)
	}

	f.HandleChange("email", "ok@example.com")
	if _, ok := f.Error("email"); ok {
		t.Error("valid value should clear the error")
	}
}

func TestForm_HandleSubmit_GatesOnValidation(t *testing.T) {
	f := New(Values{"email": "bad", "password": ""}, loginSchema())

	called := false
	ok := f.HandleSubmit(func(Values) { called = true })

	if ok {
		t.Error("submit should report failure")
	}
	if called {
		t.Error("onValid must not run when validation fails")
	}
	if !f.Touched("email") || !f.Touched("password") {
		t.Error("submit should mark every declared field touched")
	}
	if f.IsSubmitting() {
		t.Error("isSubmitting should be false after the synchronous span")
	}
}

func TestForm_HandleSubmit_Valid(t *testing.T) {
	f := New(Values{"email": "u@example.com", "password": "secret1"}, loginSchema())

	var got Values
	ok := f.HandleSubmit(func(v Values) { got = v })

	if !ok {
		t.Fatal("submit should succeed")
	}
	if got["email"] != "u@example.com" || got["password"] != "secret1" {
		t.Errorf("onValid values = %v", got)
	}
}

func TestForm_MatchRevalidatesAgainstLiveValue(t *testing.T) {
	// Regression: the confirm rule must compare against the password value
	// at validation time, not the one captured when the form was created.
	f := New(Values{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "",
		"confirmPassword": "",
	}, registerSchema())

	f.HandleChange("password", "hunter22")
	f.HandleChange("confirmPassword", "hunter22")
	f.HandleBlur("confirmPassword")

	if msg, ok := f.Error("confirmPassword"); ok {
		t.Fatalf("confirm should match live password, got error %q", msg)
	}

	// Now change the primary password; confirm must fail against the new value.
	f.HandleChange("password", "different9")
	f.HandleBlur("confirmPassword")

	if msg, ok := f.Error("confirmPassword"); !ok || msg != "Values do not match" {
		t.Errorf("confirm should re-validate against new password, got %q, %v", msg, ok)
	}
}

func TestForm_Reset(t *testing.T) {
	f := New(Values{"email": "start@example.com", "password": ""}, loginSchema())

	f.HandleChange("email", "changed@example.com")
	f.HandleBlur("password")
	f.Reset()

	if f.Value("email") != "start@example.com" {
		t.Errorf("Value(email) = %q, want initial snapshot", f.Value("email"))
	}
	if f.Touched("password") {
		t.Error("reset should clear touched flags")
	}
	if _, ok := f.Error("password"); ok {
		t.Error("reset should clear errors")
	}
	if f.IsSubmitting() {
		t.Error("reset should clear isSubmitting")
	}
}

func TestForm_EmptySchema(t *testing.T) {
	f := New(Values{}, Static(validate.Schema{}))

	called := false
	if ok := f.HandleSubmit(func(Values) { called = true }); !ok {
		t.Error("empty schema should validate vacuously")
	}
	if !called {
		t.Error("submit with empty schema should proceed to onValid")
	}
}

func TestForm_SetFieldValue(t *testing.T) {
	f := New(Values{"email": ""}, loginSchema())

	f.HandleBlur("email")
	f.SetFieldValue("email", "pre@filled.io")

	if f.Value("email") != "pre@filled.io" {
		t.Errorf("Value(email) = %q", f.Value("email"))
	}
	if _, ok := f.Error("email"); ok {
		t.Error("programmatic set should clear the stale error")
	}
}
