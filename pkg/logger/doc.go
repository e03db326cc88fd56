// Package logger builds *slog.Logger values from functional options and
// provides the attribute helpers used when contract checks report warnings.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format, applies static attributes, and wraps the handler so
// registered ContextExtractor callbacks add attributes from the context of
// every logging call.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Staging),
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithContextValue("call_id", callIDKey{}),
//	)
//	log.WarnContext(ctx, "argument accepted with warning",
//	    logger.Function("transfer"),
//	    logger.Parameter("amount"),
//	    logger.Ordinal("2nd"),
//	    logger.Value(amount),
//	    logger.Reason(msg),
//	)
//
// Options:
//
//   - WithEnvironment sets the level and format defaults for an environment.
//   - WithFormat, WithTextFormatter and WithJSONFormatter choose the output.
//   - WithLevel sets the minimum level.
//   - WithAttr and WithComponent attach static attributes.
//   - WithContextExtractors and WithContextValue read attributes from context.
//
// ParseLevel and ParseFormat convert configuration strings. WithFormat panics
// on an unknown format so misconfiguration surfaces at startup.
package logger
