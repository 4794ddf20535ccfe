package outline

import (
	"fmt"
	"path/filepath"

	"github.com/docpeek/pdf-outline/internal/pdf"
)

// Engine ties text extraction and outline detection into the
// per-document pipeline. All learned state (title, ignore set, level
// map) is constructed per document and passed by value, so one engine
// may serve concurrent documents.
type Engine struct {
	extractor *pdf.Extractor
	detector  *Detector
}

// NewEngine creates an engine from an extractor and a detector.
func NewEngine(extractor *pdf.Extractor, detector *Detector) *Engine {
	return &Engine{
		extractor: extractor,
		detector:  detector,
	}
}

// ExtractFile processes one PDF to completion. The returned result is
// always well formed: when the file cannot be opened or parsed, the
// title degrades to an error string, the outline is empty, and the
// underlying error is returned alongside for logging. Failures never
// propagate past a single document.
func (e *Engine) ExtractFile(path string) (Result, error) {
	doc, err := e.extractor.ExtractDocument(path)
	if err != nil {
		return Result{
			Title:   fmt.Sprintf("Error processing %s", filepath.Base(path)),
			Outline: []Entry{},
		}, err
	}

	return e.detector.DetectOutline(doc), nil
}
