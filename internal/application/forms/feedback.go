package forms

import (
	"github.com/crm/backend/internal/domain/form"
	"go.uber.org/zap"
)

// loggingFeedback reports rejected submissions through the structured
// log, where the frontend event stream picks them up.
type loggingFeedback struct {
	logger *zap.Logger
}

// LoggingFeedback builds a FeedbackSink that logs the first invalid
// field of every rejected submission.
func LoggingFeedback(logger *zap.Logger) form.FeedbackSink {
	return &loggingFeedback{logger: logger}
}

// InvalidSubmission implements form.FeedbackSink
func (f *loggingFeedback) InvalidSubmission(firstInvalid string) {
	f.logger.Info("submission rejected",
		zap.String("first_invalid", firstInvalid))
}
