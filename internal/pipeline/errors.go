package pipeline

import "fmt"

// Stage names a pipeline step.
type Stage string

const (
	StageProfile    Stage = "profile"
	StageInfer      Stage = "infer"
	StageSynthesize Stage = "synthesize"
)

// StageError wraps the failure of one stage, including recovered panics.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	if e == nil {
		return "stage failed"
	}
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
