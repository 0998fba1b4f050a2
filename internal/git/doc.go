// Package git provides the git operations browniecutter needs for a freshly
// generated project: init, stage, commit.
//
// Every call goes through an exec.Runner, so the package never shells out
// by itself:
//
//	client := git.New(exec.NewOSRunner())
//	if err := client.Init(ctx, root); err != nil {
//	    return err
//	}
//	if err := client.Add(ctx, root, "README.md", "setup.py"); err != nil {
//	    return err
//	}
//	sha, err := client.Commit(ctx, root, "Initial commit")
//
// # Error Handling
//
// Failures are returned as *output.ExitError with ExitSystemError:
//   - "git not found" when the executable cannot be started
//   - "git <subcommand> failed: <stderr>" for non-zero exits
//
// The scaffolder treats all of these as warnings.
package git
