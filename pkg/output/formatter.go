package output

import (
	"io"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// Progress event types
const (
	EventPairStart     = "pair_start"
	EventPairUnchanged = "pair_unchanged"
	EventPairChanged   = "pair_changed"
	EventPairError     = "pair_error"
	EventOutputWritten = "output_written"
)

// ProgressUpdate represents a progress notification during a comparison run
type ProgressUpdate struct {
	Type         string
	PathA        string
	PathB        string
	Score        float64
	RowsAdded    int
	RowsModified int
	OutputPath   string
	CurrentPair  int
	TotalPairs   int
	Error        error
}

// Formatter defines the interface for run output formatting
// Implementations include human-readable, JSON, and progress-bar formatters
type Formatter interface {
	// Start initializes the formatter once pairing is done
	Start(writer io.Writer, filesA, filesB, totalPairs int) error

	// Progress reports per-pair progress
	Progress(update ProgressUpdate) error

	// Complete finalizes output and displays the run summary
	Complete(report *models.RunReport) error

	// Error reports a fatal error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
