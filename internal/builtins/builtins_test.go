package builtins

import "testing"

// Only the three accepted case forms resolve, matching
// token.LookupIdent's keyword casing — a mixed-case spelling like
// "WrItE" is not a builtin name, same as it is not a keyword.
func TestLookupAcceptsThreeCaseForms(t *testing.T) {
	for _, name := range []string{"Write", "WRITE", "write"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) = false, want true", name)
		}
	}
}

func TestLookupRejectsMixedCase(t *testing.T) {
	if _, ok := Lookup("WrItE"); ok {
		t.Error(`Lookup("WrItE") = true, want false`)
	}
}

func TestLookupUnknownNameFails(t *testing.T) {
	if _, ok := Lookup("NotARealBuiltin"); ok {
		t.Error("Lookup(\"NotARealBuiltin\") = true, want false")
	}
}
