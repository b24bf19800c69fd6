package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Ospina115/comparador-excel/pkg/logging"
	"github.com/Ospina115/comparador-excel/pkg/match"
	"github.com/Ospina115/comparador-excel/pkg/models"
	"github.com/Ospina115/comparador-excel/pkg/output"
	"github.com/Ospina115/comparador-excel/pkg/tablediff"
	"github.com/Ospina115/comparador-excel/pkg/xlsxio"
)

// Engine orchestrates a batch comparison run: enumerate workbooks, pair
// them by name, diff each pair, and persist non-empty results. Pairs are
// processed one at a time; a pair that fails to load is skipped and the run
// continues.
type Engine struct {
	pairer    *match.Pairer
	differ    *tablediff.Differ
	formatter output.Formatter
	logger    logging.Logger
	operation *models.CompareOperation
	out       io.Writer
}

// NewEngine creates a comparison engine. A nil logger disables logging.
func NewEngine(
	pairer *match.Pairer,
	differ *tablediff.Differ,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.CompareOperation,
) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		pairer:    pairer,
		differ:    differ,
		formatter: formatter,
		logger:    logger,
		operation: operation,
		out:       os.Stdout,
	}
}

// SetOutput redirects formatter output, mainly for tests
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
}

// Run executes the comparison run. The returned report is valid even when
// err is non-nil; its status then reflects the failure.
func (e *Engine) Run(ctx context.Context) (*models.RunReport, error) {
	report := &models.RunReport{
		OperationID: e.operation.ID,
		FolderA:     e.operation.FolderA,
		FolderB:     e.operation.FolderB,
		OutputDir:   e.operation.OutputDir,
		StartTime:   time.Now(),
		Status:      models.StatusSuccess,
	}

	filesA, err := xlsxio.ListWorkbooks(e.operation.FolderA)
	if err != nil {
		return e.fail(ctx, report, err)
	}
	filesB, err := xlsxio.ListWorkbooks(e.operation.FolderB)
	if err != nil {
		return e.fail(ctx, report, err)
	}

	pairs := e.pairer.Pair(filesA, filesB)

	report.Stats.FilesA = len(filesA)
	report.Stats.FilesB = len(filesB)
	report.Stats.PairsMatched = len(pairs)

	e.logger.Info(ctx, "comparison run started", logging.Fields{
		"operation_id": e.operation.ID,
		"folder_a":     e.operation.FolderA,
		"folder_b":     e.operation.FolderB,
		"files_a":      len(filesA),
		"files_b":      len(filesB),
		"pairs":        len(pairs),
		"threshold":    e.operation.FuzzyThreshold,
	})

	e.formatter.Start(e.out, len(filesA), len(filesB), len(pairs))

	if err := os.MkdirAll(e.operation.OutputDir, 0755); err != nil {
		return e.fail(ctx, report, fmt.Errorf("failed to create output directory: %w", err))
	}

	for i, pair := range pairs {
		select {
		case <-ctx.Done():
			report.Status = models.StatusCancelled
			e.finish(ctx, report)
			return report, ctx.Err()
		default:
		}

		e.comparePair(ctx, report, pair, i+1, len(pairs))
	}

	if len(report.Errors) > 0 {
		report.Status = models.StatusPartial
	}
	e.finish(ctx, report)
	return report, nil
}

// comparePair processes a single file pair end to end. The result workbook
// is written only after the whole diff succeeded in memory.
func (e *Engine) comparePair(ctx context.Context, report *models.RunReport, pair models.FilePair, current, total int) {
	e.formatter.Progress(output.ProgressUpdate{
		Type:        output.EventPairStart,
		PathA:       pair.PathA,
		PathB:       pair.PathB,
		Score:       pair.Score,
		CurrentPair: current,
		TotalPairs:  total,
	})

	tableA, err := xlsxio.LoadTable(pair.PathA)
	if err != nil {
		e.skipPair(ctx, report, pair, current, total, err)
		return
	}
	tableB, err := xlsxio.LoadTable(pair.PathB)
	if err != nil {
		e.skipPair(ctx, report, pair, current, total, err)
		return
	}

	result := e.differ.Diff(tableA, tableB)
	report.Stats.PairsCompared++

	if result.IsEmpty() {
		report.Stats.PairsUnchanged++
		e.logger.Debug(ctx, "pair unchanged", logging.Fields{
			"file_a": pair.PathA,
			"file_b": pair.PathB,
		})
		e.formatter.Progress(output.ProgressUpdate{
			Type:        output.EventPairUnchanged,
			PathA:       pair.PathA,
			PathB:       pair.PathB,
			CurrentPair: current,
			TotalPairs:  total,
		})
		return
	}

	outPath := filepath.Join(
		e.operation.OutputDir,
		xlsxio.OutputName(match.Stem(pair.PathA), match.Stem(pair.PathB)),
	)
	if err := xlsxio.WriteResult(outPath, result); err != nil {
		e.skipPair(ctx, report, pair, current, total, err)
		return
	}

	report.Stats.PairsChanged++
	report.Stats.RowsAdded += result.Added.NumRows()
	report.Stats.RowsModified += result.Modified.NumRows()
	report.Stats.OutputsWritten++
	report.OutputFiles = append(report.OutputFiles, outPath)

	e.logger.Info(ctx, "pair compared", logging.Fields{
		"file_a":        pair.PathA,
		"file_b":        pair.PathB,
		"key_column":    result.KeyColumn,
		"rows_added":    result.Added.NumRows(),
		"rows_modified": result.Modified.NumRows(),
		"output":        outPath,
	})

	e.formatter.Progress(output.ProgressUpdate{
		Type:         output.EventPairChanged,
		PathA:        pair.PathA,
		PathB:        pair.PathB,
		RowsAdded:    result.Added.NumRows(),
		RowsModified: result.Modified.NumRows(),
		CurrentPair:  current,
		TotalPairs:   total,
	})
	e.formatter.Progress(output.ProgressUpdate{
		Type:        output.EventOutputWritten,
		PathA:       pair.PathA,
		PathB:       pair.PathB,
		OutputPath:  outPath,
		CurrentPair: current,
		TotalPairs:  total,
	})
}

// skipPair records a pair-level failure and lets the run continue
func (e *Engine) skipPair(ctx context.Context, report *models.RunReport, pair models.FilePair, current, total int, err error) {
	report.Stats.PairsSkipped++
	report.Errors = append(report.Errors, models.PairError{
		PathA:     pair.PathA,
		PathB:     pair.PathB,
		Error:     err.Error(),
		Timestamp: time.Now(),
	})

	e.logger.Error(ctx, "pair skipped", err, logging.Fields{
		"file_a": pair.PathA,
		"file_b": pair.PathB,
	})

	e.formatter.Progress(output.ProgressUpdate{
		Type:        output.EventPairError,
		PathA:       pair.PathA,
		PathB:       pair.PathB,
		CurrentPair: current,
		TotalPairs:  total,
		Error:       err,
	})
}

// fail marks the run as failed before any pair was processed
func (e *Engine) fail(ctx context.Context, report *models.RunReport, err error) (*models.RunReport, error) {
	report.Status = models.StatusFailed
	e.logger.Error(ctx, "comparison run failed", err, logging.Fields{
		"operation_id": e.operation.ID,
	})
	e.formatter.Error(err)
	e.finish(ctx, report)
	return report, err
}

// finish closes out the report timing and emits the summary
func (e *Engine) finish(ctx context.Context, report *models.RunReport) {
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	e.logger.Info(ctx, "comparison run finished", logging.Fields{
		"operation_id":    report.OperationID,
		"status":          string(report.Status),
		"pairs_compared":  report.Stats.PairsCompared,
		"pairs_changed":   report.Stats.PairsChanged,
		"pairs_skipped":   report.Stats.PairsSkipped,
		"outputs_written": report.Stats.OutputsWritten,
		"duration":        report.Duration.String(),
	})

	e.formatter.Complete(report)
}
