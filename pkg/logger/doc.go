// Package logger builds slog loggers with request-scoped attributes and
// optional Sentry reporting.
//
//	log := logger.New(logger.Config{
//	    Level:     "debug",
//	    Format:    "text",
//	    Component: "forms",
//	    SentryDSN: os.Getenv("SENTRY_DSN"),
//	}, middlewares.RequestIDExtractor())
//
// [ContextExtractor] functions run for every record and add attributes such
// as the request ID. Records at error level are also sent to Sentry as issues
// when a DSN is configured; warnings are attached as Sentry logs.
//
// [NewNope] is the default for components that were not given a logger.
package logger
