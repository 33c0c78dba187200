// Package logging provides the small logging facade used by the ecc engine
// and its command line tool.
//
// The engine only emits debug records, so Logger carries just Debug and
// With.
//
// New binds a Logger to a *slog.Logger (nil selects slog.Default()), and
// Discard returns one that drops every record:
//
//	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//	logger.Debug(ctx, "curve ready", "curve", "secp256k1")
//
// The engine never logs private keys, nonces, chain codes or shared
// secrets. Where the presence of such a value is worth recording, use
// Redacted in place of the value:
//
//	logger.Debug(ctx, "nonce rejected", logging.Redacted("nonce"), "attempt", 3)
//	// nonce="[redacted]" attempt=3
package logging
