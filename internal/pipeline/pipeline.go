package pipeline

import "github.com/funvibe/proofcheck/internal/diagnostics"

// Pipeline is a sequence of Stages.
type Pipeline struct {
	stages []Stage
}

func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run drives ctx through every stage in order, halting at the first
// stage that returns a diagnostic: every error is fatal, so there is
// no value in collecting more than one per run.
func (p *Pipeline) Run(ctx *Context) *diagnostics.Error {
	for _, stage := range p.stages {
		if err := stage.Process(ctx); err != nil {
			return err
		}
	}
	return nil
}
