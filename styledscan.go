// Package styledscan audits CSS-in-JS styling in a JavaScript/TypeScript
// source tree.
//
// It walks a directory for .js, .ts, and .tsx files, finds every use of the
// styled helper, and counts how many native elements (styled.div) and custom
// components (styled(Button)) get restyled, broken down by identifier.
//
// # Scanning
//
//	result, err := styledscan.Scan(ctx, styledscan.Config{Root: "./src"})
//	if err != nil {
//		return err
//	}
//	styledscan.WriteOutput(os.Stdout, result, styledscan.OutputText, false)
//
// # CLI Tool
//
//	go install github.com/yacobolo/styledscan/cmd/styledscan@latest
//	styledscan ./src
package styledscan

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/styledscan/internal/styled"
)

// DefaultRoot is scanned when no root directory is given
const DefaultRoot = "./src"

// Re-exported result types
type (
	FileScanResult  = styled.FileScanResult
	AggregateReport = styled.AggregateReport
	Detail          = styled.Detail
	Match           = styled.Match
	FilesystemError = styled.FilesystemError
)

// Config holds scan configuration
type Config struct {
	Root             string   // Directory to scan (default: ./src)
	Exclude          []string // doublestar patterns relative to Root
	RespectGitignore bool     // Skip paths matched by Root/.gitignore
	Jobs             int      // Max concurrent file reads (0 = DefaultJobs, <0 = unbounded)
	ListMatches      bool     // Resolve line/column of every match
	Logger           *log.Logger
}

// Result contains everything a scan produced
type Result struct {
	Report AggregateReport
	Files  []FileScanResult
}

// Scan lists source files under config.Root, scans them concurrently, and
// aggregates the results. Any listing or read failure aborts the whole scan
// and no partial result is returned.
func Scan(ctx context.Context, config Config) (*Result, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	root := config.Root
	if root == "" {
		root = DefaultRoot
	}

	files, err := styled.ListFiles(root, styled.ListOptions{
		Exclude:          config.Exclude,
		RespectGitignore: config.RespectGitignore,
	})
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	logger.Debug("listed source files", "root", root, "count", len(files))

	results, err := scanFiles(ctx, files, config.Jobs, config.ListMatches)
	if err != nil {
		return nil, fmt.Errorf("scanning files: %w", err)
	}

	report := styled.Aggregate(results)
	logger.Debug("aggregated",
		"native", report.NativeTotal,
		"custom", report.CustomTotal,
		"identifiers", len(report.PerIdentifier))

	return &Result{Report: report, Files: results}, nil
}

// DefaultJobs bounds concurrent file reads when Config.Jobs is zero
func DefaultJobs() int {
	return runtime.NumCPU() * 4
}

// jobLimit maps Config.Jobs to an errgroup limit, where -1 means no limit
func jobLimit(jobs int) int {
	switch {
	case jobs < 0:
		return -1
	case jobs == 0:
		return DefaultJobs()
	default:
		return jobs
	}
}

// scanFiles reads and scans every file concurrently.
// Each task owns one slot of the results slice, so no locking is needed.
func scanFiles(ctx context.Context, files []string, jobs int, withPositions bool) ([]FileScanResult, error) {
	results := make([]FileScanResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			content, err := os.ReadFile(file)
			if err != nil {
				return &FilesystemError{Op: "read", Path: file, Err: err}
			}

			result := styled.ScanContent(file, content)
			if withPositions {
				result.ResolvePositions(content)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
