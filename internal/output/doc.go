// Package output provides structured output handling for the ghostmigrate CLI.
//
// All user-facing text goes through a Printer: progress, warnings about
// skipped tags or colliding paths, tables and errors. The Printer switches
// between human-readable and JSON output based on the --json flag and
// disables styling when output is piped.
//
//	mode, _ := output.ParseColorMode(colorFlag)
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), mode.Styled(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": "Wrote 12 posts to _posts"})
//	printer.Warn("post %s links to unknown tag %s", postID, tagID)
//	printer.Error(err)
//	printer.Table([]string{"DATE", "SLUG"}, rows)
//
// # JSON Mode
//
// In JSON mode every message is a JSON object:
//
//	// Success: {"message": "...", ...}
//	// Warning: {"warning": "..."}  (stderr)
//	// Error:   {"error": "message", "code": N}
//
// # Exit Codes
//
//	output.ExitSuccess      // 0: Success
//	output.ExitUserError    // 1: Bad input (missing file, malformed export, bad date, unknown tag)
//	output.ExitSystemError  // 2: I/O failure while writing posts
//	output.ExitVerifyFailed // 3: verify found problems in written posts
//
// The error constructors attach these codes so that GetExitCode can turn
// any returned error into a process exit status.
package output
