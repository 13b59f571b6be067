package common

import (
	"context"
)

// Step defines a single promotion step.
type Step struct {
	Action      func(ctx context.Context) error
	Description string
}

// RunSteps executes the steps in order and stops at the first error, which
// is returned as is.
func RunSteps(ctx context.Context, steps []Step) error {
	logger := Logger(ctx)
	total := len(steps)
	for i, step := range steps {
		logger.Infof("[%d/%d] %s", i+1, total, step.Description)
		if err := step.Action(ctx); err != nil {
			logger.Debug("step: ", step.Description, " error: ", err)
			return err
		}
	}
	return nil
}
