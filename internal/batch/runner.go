// Package batch runs the outline extractor over a directory of PDF
// files, writing one JSON artifact per input.
package batch

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/docpeek/pdf-outline/internal/config"
	"github.com/docpeek/pdf-outline/internal/outline"
)

// Summary reports the outcome of one batch run.
type Summary struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Runner processes every PDF in the input directory to completion, one
// document at a time. Failures are contained per document: a document
// that cannot be processed still produces a well-formed JSON artifact
// with an error title and an empty outline.
type Runner struct {
	cfg    *config.Config
	engine *outline.Engine
}

// NewRunner creates a batch runner.
func NewRunner(cfg *config.Config, engine *outline.Engine) *Runner {
	return &Runner{cfg: cfg, engine: engine}
}

// Run processes the input directory listing taken at call time. Files
// added or removed afterwards are not observed. Exactly one output file
// is written per input file; the returned error covers only setup
// failures (unreadable input directory, uncreatable output directory),
// never a single document's failure.
func (r *Runner) Run() (Summary, error) {
	var summary Summary

	if err := os.MkdirAll(r.cfg.OutputDir, config.DefaultDirPerm); err != nil {
		return summary, fmt.Errorf("cannot create output directory %s: %w", r.cfg.OutputDir, err)
	}

	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return summary, fmt.Errorf("cannot read input directory %s: %w", r.cfg.InputDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		inputPath := filepath.Join(r.cfg.InputDir, entry.Name())
		summary.Attempted++
		log.Printf("Processing %s...", inputPath)

		result, procErr := r.engine.ExtractFile(inputPath)
		if procErr != nil {
			summary.Failed++
			log.Printf("Failed to process %s: %v", inputPath, procErr)
		} else {
			summary.Succeeded++
		}

		// The artifact is written even for failed documents so batch
		// consumers can rely on one output per input.
		outputPath := r.outputPath(entry.Name())
		if err := writeResult(outputPath, result); err != nil {
			return summary, fmt.Errorf("cannot write %s: %w", outputPath, err)
		}
		log.Printf("Created %s", outputPath)
	}

	return summary, nil
}

// outputPath maps an input filename to its JSON artifact path.
func (r *Runner) outputPath(inputName string) string {
	base := strings.TrimSuffix(inputName, filepath.Ext(inputName))
	return filepath.Join(r.cfg.OutputDir, base+".json")
}

// writeResult serializes a result as UTF-8 JSON with 4-space indentation
// and non-ASCII characters left unescaped.
func writeResult(path string, result outline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(result); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
