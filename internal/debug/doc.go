// Package debug builds the structured loggers used across flowboard.
//
// When the FLOWBOARD_DEBUG environment variable is set to a file path,
// debug-level messages are appended to that file with timestamps.
// Otherwise messages go to the writer supplied by the caller, at debug
// level only in verbose mode.
package debug
