package output

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer     io.Writer
	totalPairs int
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, filesA, filesB, totalPairs int) error {
	f.writer = writer
	f.totalPairs = totalPairs

	if writer != nil {
		fmt.Fprintf(writer, "Workbooks in A: %d, in B: %d\n", filesA, filesB)
		fmt.Fprintf(writer, "Found %d candidate pair(s)\n", totalPairs)
	}

	return nil
}

// Progress reports per-pair progress
func (f *HumanFormatter) Progress(update ProgressUpdate) error {
	if f.writer == nil {
		return nil
	}

	nameA := filepath.Base(update.PathA)
	nameB := filepath.Base(update.PathB)

	switch update.Type {
	case EventPairStart:
		fmt.Fprintf(f.writer, "[%d/%d] Comparing %s  <->  %s  (score=%.2f)\n",
			update.CurrentPair, f.totalPairs, nameA, nameB, update.Score)

	case EventPairUnchanged:
		fmt.Fprintf(f.writer, "[%d/%d] = %s: no changes, no file written\n",
			update.CurrentPair, f.totalPairs, nameA)

	case EventPairChanged:
		fmt.Fprintf(f.writer, "[%d/%d] ✓ %s: %d added, %d modified\n",
			update.CurrentPair, f.totalPairs, nameA,
			update.RowsAdded, update.RowsModified)

	case EventOutputWritten:
		fmt.Fprintf(f.writer, "        result saved to: %s\n", update.OutputPath)

	case EventPairError:
		fmt.Fprintf(f.writer, "[%d/%d] ✗ %s: %v\n",
			update.CurrentPair, f.totalPairs, nameA, update.Error)
	}

	return nil
}

// Complete finalizes output and displays the run summary
func (f *HumanFormatter) Complete(report *models.RunReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}
	writeSummary(f.writer, report)
	return nil
}

// Error reports a fatal error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// writeSummary prints the run summary shared by the human and progress
// formatters
func writeSummary(w io.Writer, report *models.RunReport) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Comparison completed in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Workbooks:\n")
	fmt.Fprintf(w, "    Folder A:        %d\n", report.Stats.FilesA)
	fmt.Fprintf(w, "    Folder B:        %d\n", report.Stats.FilesB)
	fmt.Fprintf(w, "    Pairs matched:   %d\n", report.Stats.PairsMatched)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Pairs:\n")
	fmt.Fprintf(w, "    Compared:        %d\n", report.Stats.PairsCompared)
	fmt.Fprintf(w, "    With changes:    %d\n", report.Stats.PairsChanged)
	fmt.Fprintf(w, "    Unchanged:       %d\n", report.Stats.PairsUnchanged)
	fmt.Fprintf(w, "    Skipped:         %d\n", report.Stats.PairsSkipped)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Rows:\n")
	fmt.Fprintf(w, "    Added:           %d\n", report.Stats.RowsAdded)
	fmt.Fprintf(w, "    Modified:        %d\n", report.Stats.RowsModified)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Output workbooks:  %d (in %s)\n", report.Stats.OutputsWritten, report.OutputDir)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Status: %s\n", report.Status)

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\nSkipped pairs:\n")
		for _, e := range report.Errors {
			fmt.Fprintf(w, "  %s <-> %s: %s\n", filepath.Base(e.PathA), filepath.Base(e.PathB), e.Error)
		}
	}
}
