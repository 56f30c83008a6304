package record

import "go.uber.org/zap"

// Logged returns a Handler that writes one structured debug entry per
// event: event name, run ID and iteration. Register it on each event
// you want traced, or on all four boundary events for a full run log.
// A nil logger yields a no-op handler.
func Logged(logger *zap.Logger) Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(e Event, run Run) error {
		logger.Debug("solve event",
			zap.String("event", string(e)),
			zap.String("run_id", run.ID()),
			zap.Int("iteration", run.Iteration()),
		)

		return nil
	}
}
