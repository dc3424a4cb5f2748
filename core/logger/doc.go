// Package logger holds the application logger and the session event log.
//
// The application logger is carried on a context.Context and is silent unless
// debugging is enabled. The event log records one JSON object per line for
// each command the shell runs so sessions can be audited afterwards.
package logger
