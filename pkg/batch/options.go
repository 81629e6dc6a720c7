package batch

import (
	"context"

	"github.com/sirupsen/logrus"
)

type OptionKey string

const (
	LoggerOptionKey  OptionKey = "logger_options"
	ReleaseOptionKey OptionKey = "release_options"
)

type LoggerOptions struct {
	Logger logrus.FieldLogger
}

type ReleaseOptions struct {
	ReleaseRemaining bool
}

func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// WithReleaseRemaining controls whether handles left unprocessed when the
// context is cancelled are released, letting their peers observe the
// cancellation.
func WithReleaseRemaining(ctx context.Context, releaseRemaining bool) context.Context {
	return context.WithValue(ctx, ReleaseOptionKey, ReleaseOptions{ReleaseRemaining: releaseRemaining})
}

func GetLogger(ctx context.Context) logrus.FieldLogger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return logrus.StandardLogger()
}

func IsReleaseRemainingEnabled(ctx context.Context, defaultReleaseRemaining bool) bool {
	options, ok := ctx.Value(ReleaseOptionKey).(ReleaseOptions)
	if ok {
		return options.ReleaseRemaining
	}
	return defaultReleaseRemaining
}
