package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/Ospina115/comparador-excel/pkg/models"
)

// ProgressFormatter shows a progress bar over the pair count and prints the
// usual summary when the run completes
type ProgressFormatter struct {
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewProgressFormatter creates a new progress bar formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{}
}

// Start initializes the progress bar
func (f *ProgressFormatter) Start(writer io.Writer, filesA, filesB, totalPairs int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.bar = pb.New(totalPairs).SetWriter(writer)
	f.bar.Start()
	return nil
}

// Progress advances the bar once per finished pair
func (f *ProgressFormatter) Progress(update ProgressUpdate) error {
	if f.bar == nil {
		return nil
	}

	switch update.Type {
	case EventPairUnchanged, EventPairChanged, EventPairError:
		f.bar.Increment()
	}
	return nil
}

// Complete stops the bar and prints the run summary
func (f *ProgressFormatter) Complete(report *models.RunReport) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	writeSummary(f.writer, report)
	return nil
}

// Error stops the bar so the error is not overwritten by a redraw
func (f *ProgressFormatter) Error(err error) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
