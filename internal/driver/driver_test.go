package driver_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/funvibe/proofcheck/internal/cache"
	"github.com/funvibe/proofcheck/internal/driver"
	"github.com/funvibe/proofcheck/internal/kernel"
	"github.com/funvibe/proofcheck/internal/lexer"
	"github.com/funvibe/proofcheck/internal/parser"
	"github.com/funvibe/proofcheck/internal/pipeline"
	"github.com/funvibe/proofcheck/internal/prettyprinter"
)

func run(t *testing.T, source string, ch *cache.Cache) (*pipeline.Context, *bytes.Buffer, error) {
	t.Helper()
	ctx := pipeline.NewContext(source)
	var out bytes.Buffer
	pl := pipeline.New(
		lexer.Stage{},
		parser.Stage{},
		driver.Stage{Out: &out, Cache: ch, RunID: "test-run", Now: time.Now()},
	)
	if err := pl.Run(ctx); err != nil {
		return ctx, &out, err
	}
	return ctx, &out, nil
}

func TestScenarioIdentity(t *testing.T) {
	src := `id : (T : Type) -> T -> T := (T : Type) => (x : T) => x;`
	_, out, err := run(t, src, nil)
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if !strings.Contains(out.String(), "Proof 'id' passed") {
		t.Errorf("output = %q, want mention of id passing", out.String())
	}
}

func TestScenarioDependentApplication(t *testing.T) {
	src := `Nat : Type; zero : Nat; id : (T : Type) -> T -> T := (T : Type) => (x : T) => x; test : Nat := id Nat zero;`
	ctx, out, err := run(t, src, nil)
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	for _, name := range []string{"id", "test"} {
		if !strings.Contains(out.String(), "Proof '"+name+"' passed") {
			t.Errorf("expected %q to pass, output: %q", name, out.String())
		}
	}
	d, ok := ctx.Env.Get("test")
	if !ok {
		t.Fatal("test not found in final environment")
	}
	norm := kernel.Simp(d.Def)
	if got := prettyprinter.Print(norm); got != "zero" {
		t.Errorf("test.def normalises to %q, want zero", got)
	}
}

func TestScenarioTypeMismatch(t *testing.T) {
	src := `Nat : Type; Bool : Type; t : Bool; f : Nat -> Nat := (x : Nat) => x; bad : Nat := f t;`
	_, _, err := run(t, src, nil)
	if err == nil {
		t.Fatal("expected a type mismatch error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Type mismatch") || !strings.Contains(msg, "Bool") || !strings.Contains(msg, "Nat") {
		t.Errorf("error message = %q, want a Type mismatch naming Bool and Nat", msg)
	}
}

func TestScenarioShadowing(t *testing.T) {
	src := `id : (T : Type) -> T -> T := (T : Type) => (T : T) => T;`
	ctx, _, err := run(t, src, nil)
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	d, _ := ctx.Env.Get("id")
	if got := prettyprinter.Print(d.Def); got != `(Type => (\1 => \1))` {
		t.Errorf("resolved body = %q, want (Type => (\\1 => \\1))", got)
	}
}

func TestScenarioUndefinedIdentifier(t *testing.T) {
	src := `bad : Nat;`
	_, _, err := run(t, src, nil)
	if err == nil {
		t.Fatal("expected an undefined-identifier error")
	}
	if !strings.Contains(err.Error(), "Nat not defined") {
		t.Errorf("error message = %q, want it to say Nat not defined", err.Error())
	}
}

func TestScenarioSorryEscape(t *testing.T) {
	src := `Nat : Type; zero : Nat := SORRY Nat;`
	ctx, out, err := run(t, src, nil)
	if err != nil {
		t.Fatalf("unexpected failure: %s", err)
	}
	if !strings.Contains(out.String(), "Proof 'zero' passed") {
		t.Errorf("output = %q, want zero to pass", out.String())
	}
	d, _ := ctx.Env.Get("zero")
	norm := kernel.Simp(d.Def)
	if got := prettyprinter.Print(norm); got != "Nat" {
		t.Errorf("zero.def normalises to %q, want Nat (SORRY Nat reduces to Nat)", got)
	}
}

func TestIncrementalCacheSkipsUnchangedDeclarationsOnRerun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	ch, err := cache.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %s", err)
	}
	defer ch.Close()

	src := `Nat : Type; zero : Nat; same : Nat := zero;`

	_, out1, err := run(t, src, ch)
	if err != nil {
		t.Fatalf("first run failed: %s", err)
	}
	if strings.Contains(out1.String(), "cached") {
		t.Errorf("first run should not report any cache hits, got: %q", out1.String())
	}

	_, out2, err := run(t, src, ch)
	if err != nil {
		t.Fatalf("second run failed: %s", err)
	}
	if !strings.Contains(out2.String(), "Proof 'same' passed (cached)") {
		t.Errorf("second run should report a cache hit for 'same', got: %q", out2.String())
	}
}

func TestIncrementalCacheNeverCachesSorry(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	ch, err := cache.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %s", err)
	}
	defer ch.Close()

	src := `Nat : Type; zero : Nat := SORRY Nat;`
	run(t, src, ch)
	_, out2, err := run(t, src, ch)
	if err != nil {
		t.Fatalf("second run failed: %s", err)
	}
	if strings.Contains(out2.String(), "Proof 'zero' passed (cached)") {
		t.Error("a declaration whose body mentions SORRY must never be served from cache")
	}
}
