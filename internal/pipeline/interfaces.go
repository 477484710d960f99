package pipeline

import "github.com/funvibe/proofcheck/internal/diagnostics"

// Stage is any component that can advance a Context one step, failing
// fast with a single diagnostic — every error in this system is fatal
// to the run, so a Stage never partially succeeds.
type Stage interface {
	Process(ctx *Context) *diagnostics.Error
}
