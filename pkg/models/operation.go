package models

import (
	"time"
)

// CompareOperation describes one batch comparison run
type CompareOperation struct {
	// ID uniquely identifies this run
	ID string

	// FolderA is the directory holding the older exports
	FolderA string

	// FolderB is the directory holding the newer exports
	FolderB string

	// OutputDir is where result workbooks are written
	OutputDir string

	// FuzzyThreshold is the minimum name similarity for fuzzy pairing
	FuzzyThreshold float64

	// KeyCandidates are header names accepted as key columns without a
	// uniqueness check
	KeyCandidates []string

	// CreatedAt is when the operation was created
	CreatedAt time.Time
}

// Validate checks if the operation parameters are valid
func (op *CompareOperation) Validate() error {
	if op.FolderA == "" {
		return &ValidationError{Field: "folder_a", Message: "folder A path is required"}
	}
	if op.FolderB == "" {
		return &ValidationError{Field: "folder_b", Message: "folder B path is required"}
	}
	if op.OutputDir == "" {
		return &ValidationError{Field: "output_dir", Message: "output directory is required"}
	}
	if op.FuzzyThreshold < 0 || op.FuzzyThreshold > 1 {
		return &ValidationError{Field: "fuzzy_threshold", Message: "must be between 0 and 1"}
	}
	return nil
}

// ValidationError represents a parameter validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
