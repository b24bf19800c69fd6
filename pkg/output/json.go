package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct {
	writer io.Writer
	events []JSONEvent
}

// JSONEvent represents a single event in the JSON output stream
type JSONEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Data      any       `json:"data,omitempty"`
}

// JSONStartData represents the data for a start event
type JSONStartData struct {
	FilesA     int `json:"files_a"`
	FilesB     int `json:"files_b"`
	TotalPairs int `json:"total_pairs"`
}

// JSONPairData represents pair-related event data
type JSONPairData struct {
	PathA        string  `json:"path_a"`
	PathB        string  `json:"path_b"`
	Score        float64 `json:"score,omitempty"`
	RowsAdded    int     `json:"rows_added,omitempty"`
	RowsModified int     `json:"rows_modified,omitempty"`
	OutputPath   string  `json:"output_path,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// JSONReportData represents the final report data
type JSONReportData struct {
	OperationID string            `json:"operation_id"`
	FolderA     string            `json:"folder_a"`
	FolderB     string            `json:"folder_b"`
	OutputDir   string            `json:"output_dir"`
	Duration    string            `json:"duration"`
	Stats       models.Statistics `json:"stats"`
	OutputFiles []string          `json:"output_files,omitempty"`
	Status      models.RunStatus  `json:"status"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, filesA, filesB, totalPairs int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "start",
		Data:      JSONStartData{FilesA: filesA, FilesB: filesB, TotalPairs: totalPairs},
	})
	return nil
}

// Progress records per-pair progress as events
func (f *JSONFormatter) Progress(update ProgressUpdate) error {
	data := JSONPairData{
		PathA:        update.PathA,
		PathB:        update.PathB,
		Score:        update.Score,
		RowsAdded:    update.RowsAdded,
		RowsModified: update.RowsModified,
		OutputPath:   update.OutputPath,
	}
	if update.Error != nil {
		data.Error = update.Error.Error()
	}

	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      update.Type,
		Data:      data,
	})
	return nil
}

// Complete emits all events plus the final report as a single JSON document
func (f *JSONFormatter) Complete(report *models.RunReport) error {
	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "complete",
		Data: JSONReportData{
			OperationID: report.OperationID,
			FolderA:     report.FolderA,
			FolderB:     report.FolderB,
			OutputDir:   report.OutputDir,
			Duration:    report.Duration.String(),
			Stats:       report.Stats,
			OutputFiles: report.OutputFiles,
			Status:      report.Status,
		},
	})

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(f.events)
}

// Error records a fatal error event
func (f *JSONFormatter) Error(err error) error {
	f.events = append(f.events, JSONEvent{
		Timestamp: time.Now(),
		Type:      "error",
		Data:      map[string]string{"error": err.Error()},
	})
	return nil
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
