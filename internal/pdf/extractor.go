package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Extractor turns PDF files into the block/line/span document model.
type Extractor struct {
	maxFileSize int64
	layout      LayoutConfig
}

// NewExtractor creates an extractor with the specified file size cap.
func NewExtractor(maxFileSize int64) *Extractor {
	return &Extractor{
		maxFileSize: maxFileSize,
		layout:      DefaultLayoutConfig(),
	}
}

// NewExtractorWithLayout creates an extractor with a custom layout configuration.
func NewExtractorWithLayout(maxFileSize int64, layout LayoutConfig) *Extractor {
	return &Extractor{
		maxFileSize: maxFileSize,
		layout:      layout,
	}
}

// ExtractDocument parses a PDF file into a Document. Any failure to
// admit, validate, or parse the file is reported as an error; callers
// decide how a failed document degrades.
func (e *Extractor) ExtractDocument(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := e.validatePDFFile(path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	doc := &Document{
		Path:  path,
		Pages: make([]Page, 0, pdfReader.NumPage()),
	}

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{})
			continue
		}
		doc.Pages = append(doc.Pages, Page{
			Blocks: buildBlocks(e.pageFragments(page), e.layout),
		})
	}

	return doc, nil
}

// pageFragments reads the positioned text fragments of one page. Content
// extraction can panic on malformed pages; such a page is treated as empty.
func (e *Extractor) pageFragments(page pdf.Page) (fragments []pdf.Text) {
	defer func() {
		if recover() != nil {
			fragments = nil
		}
	}()
	return page.Content().Text
}

// validatePDFFile performs basic admission checks and a structural
// validation probe before any text parsing.
func (e *Extractor) validatePDFFile(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() > e.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), e.maxFileSize)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("PDF validation failed: %w", err)
	}

	return nil
}

// FileInfo summarizes a PDF file without extracting its text.
type FileInfo struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	PageCount int    `json:"page_count"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

// InspectFile validates a PDF and reports its page count. Validation
// errors are carried in the result rather than returned, so callers can
// surface them directly.
func (e *Extractor) InspectFile(path string) FileInfo {
	info := FileInfo{Path: path}

	fileInfo, err := os.Stat(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.SizeBytes = fileInfo.Size()

	if err := e.validatePDFFile(path, fileInfo); err != nil {
		info.Error = err.Error()
		return info
	}

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		info.Error = fmt.Sprintf("page count failed: %v", err)
		return info
	}

	info.PageCount = pageCount
	info.Valid = true
	return info
}
