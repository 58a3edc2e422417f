// Package cmd provides helpers for executing external commands with
// stderr capture, context cancellation, and verbose logging.
package cmd
