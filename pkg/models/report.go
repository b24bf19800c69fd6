package models

import (
	"time"
)

// RunReport represents the results of a comparison run
type RunReport struct {
	// Operation details
	OperationID string
	FolderA     string
	FolderB     string
	OutputDir   string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats Statistics

	// Output workbooks written during the run
	OutputFiles []string

	// Errors encountered (one entry per skipped pair)
	Errors []PairError

	// Overall status
	Status RunStatus
}

// Statistics holds comparison run metrics
type Statistics struct {
	// Workbooks discovered per folder
	FilesA int
	FilesB int

	// Pairing
	PairsMatched int

	// Comparison outcomes
	PairsCompared  int
	PairsUnchanged int
	PairsChanged   int
	PairsSkipped   int

	// Row-level totals across all changed pairs
	RowsAdded    int
	RowsModified int

	// Result workbooks written
	OutputsWritten int
}

// RunStatus represents the overall result
type RunStatus string

const (
	// StatusSuccess indicates all pairs were compared successfully
	StatusSuccess RunStatus = "success"
	// StatusPartial indicates some pairs were skipped due to read errors
	StatusPartial RunStatus = "partial"
	// StatusFailed indicates the run could not complete
	StatusFailed RunStatus = "failed"
	// StatusCancelled indicates the run was cancelled
	StatusCancelled RunStatus = "cancelled"
)

// ExitCode returns the appropriate process exit code for the run status
func (s RunStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}

// PairError represents a pair skipped because one of its files failed to load
type PairError struct {
	PathA     string
	PathB     string
	Error     string
	Timestamp time.Time
}
