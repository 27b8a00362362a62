// Package logger provides a small slog factory with consistent attribute
// helpers for the kit's services.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "authkit")),
//	)
//
// Services accept the logger via their functional options and default to a
// discard logger, so logging is always opt-in.
package logger
