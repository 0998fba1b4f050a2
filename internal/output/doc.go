// Package output provides structured output handling for the browniecutter CLI.
//
// Every command writes through a Printer, which renders either styled
// human-readable text or JSON depending on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Created demo", "root": "demo"})
//	printer.Warn("git init failed: %v", err)
//	printer.Error(err)
//
// # Progress Logging
//
// Long-running operations never print directly. They receive a Logger and
// call Emit for every directory or file they create. The command decides at
// the call site whether those messages are shown:
//
//	var logger output.Logger = output.Discard
//	if verbose {
//	    logger = printer
//	}
//
// A Printer in JSON mode swallows progress messages so that stdout stays a
// single JSON document.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Invalid name, unsupported backend, bad flags
//	output.ExitSystemError // 2: I/O failure, missing tool
//	output.ExitConflict    // 3: Target directory already exists
//
// Use NewUserError, NewSystemError and NewConflictError to build errors that
// carry these codes; GetExitCode turns any error into a process exit code.
package output
