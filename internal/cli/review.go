package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dgrist/revu/internal/config"
	"github.com/dgrist/revu/internal/logging"
	"github.com/dgrist/revu/internal/output"
	"github.com/dgrist/revu/internal/review"
	"github.com/dgrist/revu/internal/walker"
	"github.com/dgrist/revu/internal/worker"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagRecursive     bool
	flagConfig        string
	flagFormat        string
	flagOut           string
	flagNoSecurity    bool
	flagNoPerformance bool
	flagNoQuality     bool
	flagJobs          int
	flagNoColor       bool
	flagDebug         bool
)

var reviewCmd = &cobra.Command{
	Use:   "review <path>",
	Short: "Review a file or directory tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

func init() {
	reviewCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "Recursively review directories")
	reviewCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to configuration file")
	reviewCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format (text, json, html)")
	reviewCmd.Flags().StringVarP(&flagOut, "output", "o", "", "Output file path (default: stdout)")
	reviewCmd.Flags().BoolVar(&flagNoSecurity, "no-security", false, "Skip security checks")
	reviewCmd.Flags().BoolVar(&flagNoPerformance, "no-performance", false, "Skip performance checks")
	reviewCmd.Flags().BoolVar(&flagNoQuality, "no-quality", false, "Skip quality checks")
	reviewCmd.Flags().IntVar(&flagJobs, "jobs", 1, "Number of parallel review workers")
	reviewCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored status output")
	reviewCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func runReview(cmd *cobra.Command, args []string) error {
	logging.Init(flagDebug)
	if flagNoColor {
		color.NoColor = true
	}

	// Format is validated before any scanning, so a typo fails fast instead
	// of after a long run.
	if _, err := output.ForFormat(flagFormat); err != nil {
		exitCode = ExitError
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitCode = ExitError
		return err
	}
	if flagNoSecurity {
		cfg.CheckSecurity = false
	}
	if flagNoPerformance {
		cfg.CheckPerformance = false
	}
	if flagNoQuality {
		cfg.CheckQuality = false
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		exitCode = ExitError
		return fmt.Errorf("path not found: %s", path)
	}

	sess := review.New(cfg)
	if info.IsDir() {
		fmt.Fprintf(os.Stderr, "Reviewing directory: %s (recursive: %v)\n", path, flagRecursive)
		if err := reviewTree(sess, path, cfg); err != nil {
			exitCode = ExitError
			return err
		}
	} else {
		fmt.Fprintf(os.Stderr, "Reviewing file: %s\n", path)
		sess.ReviewFile(path)
	}

	report := sess.Report()
	if flagOut != "" {
		if err := output.WriteFile(flagOut, flagFormat, report); err != nil {
			exitCode = ExitError
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to: %s\n", flagOut)
	} else {
		rendered, err := output.Render(flagFormat, report)
		if err != nil {
			exitCode = ExitError
			return err
		}
		fmt.Fprintln(os.Stdout, rendered)
	}

	printSummary(report)
	return nil
}

// reviewTree walks the tree and reviews each unit, fanning out to a worker
// pool when --jobs asks for parallelism.
func reviewTree(sess *review.Session, root string, cfg config.Config) error {
	files, err := walker.List(root, walker.Options{
		Recursive:       flagRecursive,
		ExcludePatterns: cfg.ExcludePatterns,
	})
	if err != nil {
		return err
	}
	logging.Logger.Debugf("found %d reviewable files under %s", len(files), root)

	if flagJobs <= 1 {
		for _, f := range files {
			sess.ReviewFile(f)
		}
		return nil
	}

	pool, err := worker.NewPool(flagJobs, len(files))
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool.Start(ctx, sess.ReviewFile)
	for _, f := range files {
		if err := pool.Submit(ctx, f); err != nil {
			return err
		}
	}
	pool.Wait()
	return nil
}

// printSummary writes a one-line colored wrap-up to stderr. The report
// itself stays plain so renderers remain deterministic.
func printSummary(report *review.Report) {
	criticals := 0
	for _, fs := range report.Findings {
		for _, f := range fs {
			if f.Severity == review.SeverityCritical {
				criticals++
			}
		}
	}

	line := fmt.Sprintf("%d issues across %d files (%d lines)",
		report.Stats.IssuesFound, report.Stats.FilesReviewed, report.Stats.LinesReviewed)
	switch {
	case criticals > 0:
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "%s, %d critical\n", line, criticals)
	case report.Stats.IssuesFound > 0:
		color.New(color.FgYellow).Fprintln(os.Stderr, line)
	default:
		color.New(color.FgGreen).Fprintln(os.Stderr, "No issues found")
	}
}
