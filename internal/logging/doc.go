// Package logging provides structured logging for ShopZone.
//
// Every surface (the terminal storefront, the HTTP API, the CLI) writes JSON
// lines through a [Logger] wrapping log/slog. Entries carry the shopper and
// screen that produced them so a single shopzone.log can be filtered per
// shopper afterwards.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(cfg.Paths.LogDir, cfg.Logging.Level)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	shopper := logger.WithScreen("api").WithShopper(id)
//	shopper.Info("cart line added", "product_id", 3, "quantity", 2)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"cart line added","screen":"api","shopper_id":"...","product_id":3,"quantity":2}
//
// # Rotation
//
// [NewLoggerWithRotation] backs the file with a [RotatingWriter], which moves
// shopzone.log to shopzone.log.1 (optionally gzipped) once it grows past
// MaxSizeMB and keeps at most MaxBackups old files.
//
// # Reading Logs Back
//
// [ReadEntries] parses the active log file, [FilterEntries] narrows it by
// level, time, shopper, screen or message, and [WriteEntries] renders the
// result as text, JSON or CSV. The "shopzone logs" command is built on these.
//
// All types in this package are safe for concurrent use.
package logging
