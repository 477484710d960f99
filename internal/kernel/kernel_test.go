package kernel

import "testing"

func TestIsSorryOnlyMatchesABareReference(t *testing.T) {
	if !IsSorry(&Ident{Name: SorryName}) {
		t.Error("a bare SORRY ident should be IsSorry")
	}
	applied := &App{Fun: &Ident{Name: SorryName}, Arg: &Ident{Name: "Nat"}}
	if IsSorry(applied) {
		t.Error("SORRY applied to an argument is an App, not a bare reference")
	}
}

func TestMentionsSorryFindsTheAppliedForm(t *testing.T) {
	// This is the only form that ever actually passes a real check:
	// "zero : Nat := SORRY Nat;" resolves to App(Ident(SORRY), Ident(Nat)).
	applied := &App{Fun: &Ident{Name: SorryName}, Arg: &Ident{Name: "Nat"}}
	if !MentionsSorry(applied) {
		t.Error("MentionsSorry should find SORRY at the head of an App")
	}
}

func TestMentionsSorryFindsItNestedUnderBinders(t *testing.T) {
	lam := &Lambda{
		Head: &Ident{Name: "Nat"},
		Body: &App{Fun: &Ident{Name: SorryName}, Arg: &Ref{Index: 1}},
	}
	if !MentionsSorry(lam) {
		t.Error("MentionsSorry should find SORRY inside a lambda body")
	}
	pi := &Pi{Head: &Ident{Name: "Nat"}, Tail: &Ident{Name: SorryName}}
	if !MentionsSorry(pi) {
		t.Error("MentionsSorry should find SORRY inside a pi tail")
	}
}

func TestMentionsSorryFalseWhenAbsent(t *testing.T) {
	e := &App{Fun: &Ident{Name: "f"}, Arg: &Ident{Name: "x"}}
	if MentionsSorry(e) {
		t.Error("MentionsSorry should be false for a term that never names SORRY")
	}
	if MentionsSorry(&Ref{Index: 1}) {
		t.Error("a bare Ref can never mention SORRY")
	}
}
