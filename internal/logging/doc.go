// Package logging provides structured logging for povctl.
//
// It wraps a global zap logger that stays silent unless a level is requested
// through Initialize or the POVCTL_LOG_LEVEL environment variable, so the
// camera client can be embedded without producing output.
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Request and response helpers (LogRequest, LogResponse) log at debug level
// and never include the session token.
package logging
