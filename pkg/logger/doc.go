// Package logger builds *slog.Logger values from functional options.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler so that values stored in a context.Context are added to every record
// logged with that context:
//
//	log := logger.New(
//		logger.WithEnvironment("production", "rulekit"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "form rejected", logger.Report(err))
//
// Attribute helpers in attr.go keep key names consistent. Report renders a
// validator.Report as a group of id=message pairs and ignores other errors.
package logger
