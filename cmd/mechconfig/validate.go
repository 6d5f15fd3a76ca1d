package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NCAR/MechanismConfiguration-sub001/pkg/cli"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/mechanism/parser"
	"github.com/NCAR/MechanismConfiguration-sub001/pkg/watch"
)

var validateFlags struct {
	file     string
	dir      string
	format   string
	progress bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate mechanism configuration files",
	Long: `Validate mechanism configuration files and report every defect found.

The validate command parses each file and checks:
  - YAML/JSON syntax
  - Required, optional and unknown keys for every object
  - Value types, including numeric parameters and species lists
  - Duplicate species and phases
  - Species and phase references from phases, reactions and models

Examples:
  # Validate a single file
  mechconfig validate --file mechanism.yaml

  # Validate every .yaml, .yml and .json file under a directory
  mechconfig validate --dir configs/

  # JSON output for CI/CD
  mechconfig validate --dir configs/ --format json

  # Validate the mechanisms/ directory of a repository
  mechconfig validate --git https://github.com/org/mechanisms.git --git-path mechanisms`,
	RunE: validateMechanisms,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "mechanism file to validate")
	validateCmd.Flags().StringVarP(&validateFlags.dir, "dir", "d", "", "directory of mechanism files")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "", "output format: text, json, yaml (default from parser.default_format)")
	validateCmd.Flags().BoolVar(&validateFlags.progress, "progress", false, "show a progress bar on stderr")
	addGitFlags(validateCmd)
}

func validateMechanisms(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd, applyGitFlags)
	if err != nil {
		return err
	}
	defer env.Close()

	// A configured repository is the fallback source when no local path
	// is given.
	local := validateFlags.file != "" || validateFlags.dir != ""
	useGit := gitFlags.url != "" || (!local && env.cfg.Git.Repository != "")
	if !local && !useGit {
		return fmt.Errorf("either --file, --dir or --git must be specified")
	}

	format := validateFlags.format
	if format == "" {
		format = env.cfg.Parser.DefaultFormat
	}
	outputFormat, err := cli.ParseOutputFormat(format)
	if err != nil {
		return err
	}

	var files []string
	if validateFlags.file != "" {
		files = append(files, validateFlags.file)
	}
	if validateFlags.dir != "" {
		matches, err := watch.Files(validateFlags.dir, env.cfg.Watch.Extensions)
		if err != nil {
			return fmt.Errorf("failed to list mechanism files: %w", err)
		}
		files = append(files, matches...)
	}
	if useGit {
		repo, commit, err := env.openRepository(commandContext(cmd))
		if err != nil {
			return cli.NewCommandError("validate", err)
		}
		defer repo.Close()

		matches, err := repo.MechanismFiles(env.cfg.Watch.Extensions)
		if err != nil {
			return cli.NewCommandError("validate", err)
		}
		files = append(files, matches...)

		if outputFormat == cli.FormatText {
			fmt.Fprintf(cmd.OutOrStdout(), "Repository %s\n\n", describeCommit(repo, commit))
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no mechanism files found")
	}

	reports := validateAll(cmd, env, env.newParser(), files)
	env.pruneHistory(commandContext(cmd))

	summary, err := writeValidation(cmd, outputFormat, reports)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return cli.NewCommandError("validate", cli.NewValidationFailedError(summary))
	}
	return nil
}

func validateAll(cmd *cobra.Command, env *environment, p *parser.Parser, files []string) []*cli.FileReport {
	var progress cli.ProgressReporter
	if validateFlags.progress {
		progress = cli.NewProgressReporter(cmd.ErrOrStderr())
		progress.Start(int64(len(files)))
	}

	ctx := commandContext(cmd)
	reports := make([]*cli.FileReport, 0, len(files))
	for i, file := range files {
		report, _ := env.validateFile(ctx, p, file)
		reports = append(reports, report)

		if progress != nil {
			if !report.Valid {
				progress.Fail()
			}
			progress.Update(int64(i + 1))
		}
	}

	if progress != nil {
		progress.Finish()
	}
	return reports
}

func writeValidation(cmd *cobra.Command, format cli.OutputFormat, reports []*cli.FileReport) (cli.Summary, error) {
	out := cmd.OutOrStdout()
	if format == cli.FormatText {
		return cli.WriteReports(out, reports, cli.TextOptions{Verbose: verbose}), nil
	}

	report := cli.NewReport(reports)
	formatter, err := cli.NewFormatter(format)
	if err != nil {
		return cli.Summary{}, err
	}
	if err := formatter.FormatTo(out, report); err != nil {
		return cli.Summary{}, fmt.Errorf("failed to write report: %w", err)
	}
	return report.Summary, nil
}
