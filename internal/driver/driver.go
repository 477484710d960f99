// Package driver is the top-level checking loop: for each
// declaration in order, resolve its type (and body, if present), check
// the body inhabits the type, extend the environment regardless, and
// halt the whole run on the first failure.
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/funvibe/proofcheck/internal/cache"
	"github.com/funvibe/proofcheck/internal/checker"
	"github.com/funvibe/proofcheck/internal/diagnostics"
	"github.com/funvibe/proofcheck/internal/kernel"
	"github.com/funvibe/proofcheck/internal/pipeline"
	"github.com/funvibe/proofcheck/internal/prettyprinter"
)

// Stage runs the checking loop over ctx.Decls, extending ctx.Env in place.
// Out is where "Proof '<name>' passed" lines are written; Cache is
// optional (nil disables the incremental check cache entirely).
type Stage struct {
	Out   io.Writer
	Cache *cache.Cache
	RunID string
	Now   time.Time
}

func (s Stage) Process(ctx *pipeline.Context) *diagnostics.Error {
	if s.RunID == "" {
		s.RunID = uuid.New().String()
	}
	checkedAt := s.Now.UTC().Format(time.RFC3339)

	ctx.ResolvedTy = make([]kernel.Expr, len(ctx.Decls))
	ctx.ResolvedDef = make([]kernel.Expr, len(ctx.Decls))
	ctx.Passed = make([]bool, len(ctx.Decls))

	for i, decl := range ctx.Decls {
		ty, err := kernel.Resolve(decl.Ty, nil, ctx.Env)
		if err != nil {
			err.RunID = s.RunID
			return err
		}
		ctx.ResolvedTy[i] = ty

		var def kernel.Expr
		if decl.Def != nil {
			def, err = kernel.Resolve(decl.Def, nil, ctx.Env)
			if err != nil {
				err.RunID = s.RunID
				return err
			}
			ctx.ResolvedDef[i] = def
		}

		if def != nil {
			passed, hit, cerr := s.checkWithCache(decl.Name, ty, def, ctx)
			if cerr != nil {
				cerr.RunID = s.RunID
				return cerr
			}
			ctx.Passed[i] = passed
			if s.Out != nil {
				suffix := ""
				if hit {
					suffix = " (cached)"
				}
				fmt.Fprintf(s.Out, "Proof '%s' passed%s\n", decl.Name, suffix)
			}
			if s.Cache != nil && !kernel.MentionsSorry(def) {
				s.Cache.Store(decl.Name, cache.Hash(ty, def), cache.VerdictPass, checkedAt)
			}
		} else if s.Cache != nil {
			s.Cache.Store(decl.Name, cache.Hash(ty, nil), cache.VerdictAxiom, checkedAt)
		}

		ctx.Env.Extend(decl.Name, ty, def)
	}

	if s.Out != nil {
		elapsed := time.Since(s.Now).Round(time.Millisecond)
		fmt.Fprintf(s.Out, "checked %s declarations in %s\n",
			humanize.Comma(int64(len(ctx.Decls))), elapsed)
	}
	return nil
}

// checkWithCache verifies def inhabits ty, skipping member_of when the
// cache has a passing verdict for an unchanged (and SORRY-free) hash.
// A cache hit never changes the outcome, only whether member_of runs.
func (s Stage) checkWithCache(name string, ty, def kernel.Expr, ctx *pipeline.Context) (passed bool, hit bool, err *diagnostics.Error) {
	if s.Cache != nil && !kernel.MentionsSorry(def) {
		h := cache.Hash(ty, def)
		if v, ok := s.Cache.Lookup(name, h); ok && v == cache.VerdictPass {
			return true, true, nil
		}
	}

	ok, cerr := checker.MemberOf(def, ty, nil, ctx.Env)
	if cerr != nil {
		return false, false, cerr
	}
	if !ok {
		synth, _ := checker.TypeOf(def, nil, ctx.Env)
		return false, false, diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrC003, def.GetToken(),
			prettyprinter.Print(def), prettyprinter.Print(synth), prettyprinter.Print(ty))
	}
	return true, false, nil
}
