package validate

import "testing"

func TestField(t *testing.T) {
	t.Run("all pass", func(t *testing.T) {
		res := Field("user@example.com", []Rule{Required(), Email()})
		if !res.Valid {
			t.Errorf("result = %+v, want valid", res)
		}
		if len(res.Errors) != 0 {
			t.Errorf("Errors = %v, want empty", res.Errors)
		}
	})

	t.Run("collects every failing rule in order", func(t *testing.T) {
		res := Field("", []Rule{Required(), MinLength(6), Email()})
		if res.Valid {
			t.Fatal("result should be invalid")
		}
		want := []string{
			"This field is required",
			"Must be at least 6 characters",
			"Please enter a valid email address",
		}
		if len(res.Errors) != len(want) {
			t.Fatalf("Errors = %v, want %d entries", res.Errors, len(want))
		}
		for i, msg := range want {
			if res.Errors[i] != msg {
				t.Errorf("Errors[%d] = %q, want %q", i, res.Errors[i], msg)
			}
		}
	})

	t.Run("single failure", func(t *testing.T) {
		res := Field("", []Rule{Required()})
		if res.Valid || len(res.Errors) != 1 {
			t.Errorf("result = %+v, want single error", res)
		}
	})

	t.Run("no rules", func(t *testing.T) {
		res := Field("anything", nil)
		if !res.Valid {
			t.Errorf("result = %+v, want valid with no rules", res)
		}
	})
}

func TestForm(t *testing.T) {
	schema := Schema{
		"email":    {Required(), Email()},
		"password": {Required(), MinLength(6)},
	}

	t.Run("invalid fields reported per field", func(t *testing.T) {
		results := Form(map[string]string{"email": "bad", "password": ""}, schema)

		if results["email"].Valid {
			t.Error("email should be invalid")
		}
		if results["password"].Valid {
			t.Error("password should be invalid")
		}
		if FormValid(results) {
			t.Error("FormValid should be false")
		}
	})

	t.Run("absent value treated as empty", func(t *testing.T) {
		results := Form(map[string]string{}, schema)
		if results["email"].Valid {
			t.Error("absent email should fail Required")
		}
	})

	t.Run("fields outside schema ignored", func(t *testing.T) {
		results := Form(map[string]string{"email": "a@b.co", "password": "secret1", "extra": ""}, schema)
		if _, ok := results["extra"]; ok {
			t.Error("unscheduled field should not appear in results")
		}
		if !FormValid(results) {
			t.Errorf("results = %+v, want all valid", results)
		}
	})

	t.Run("empty schema vacuously valid", func(t *testing.T) {
		results := Form(map[string]string{"email": "whatever"}, Schema{})
		if len(results) != 0 {
			t.Errorf("results = %+v, want empty", results)
		}
		if !FormValid(results) {
			t.Error("empty results should be vacuously valid")
		}
	})
}
