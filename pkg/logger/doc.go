// Package logger builds slog loggers for the contact service.
//
// Loggers write JSON to stdout and can optionally fan out warn/error
// records to Sentry. Context extractors inject request-scoped values
// (request ID, client IP) into every record at log time:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "submission received")
//
// The package also holds the masking helpers used to keep personal
// data out of log output. Handlers must never log a raw email address
// or client IP; pass them through MaskEmail / MaskIP first.
package logger
