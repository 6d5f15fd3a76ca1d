/*
Package cli provides command-line helpers shared by the mechconfig commands.

Output Formatting:

Command results are written as text, JSON or YAML:

	formatter, err := cli.NewFormatter(cli.FormatJSON)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(os.Stdout, mechanism); err != nil {
		return err
	}

Validation Reports:

FileReport flattens a parse result into a serializable report, and
WriteReports prints a set of reports with a summary:

	report := cli.NewFileReport(path, result, elapsed)
	summary := cli.WriteReports(os.Stdout, []*cli.FileReport{report})
	if summary.Failed > 0 {
		return cli.NewValidationFailedError(summary)
	}

Progress Reporting:

For long directory runs, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(int64(len(files)))
	for i, file := range files {
		// Validate file
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler()
	defer stop()
*/
package cli
