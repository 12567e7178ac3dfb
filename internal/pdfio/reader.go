package pdfio

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadResult carries the flattened first-page text of an order document.
type ReadResult struct {
	Text  string `json:"text"`
	Path  string `json:"path"`
	Pages int    `json:"pages"`
	Size  int64  `json:"size"`
}

// Reader extracts the text layer of an order confirmation PDF. Only the
// first page is read; Shopify order confirmations are single-page and the
// pipeline has no multi-page handling.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new order PDF reader with the specified constraints.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
	}
}

// ReadOrderText extracts the first page's text fragments, joined by single
// spaces in the order the layout engine produced them. Any failure here is
// a document read failure and is surfaced to the caller; there is no retry.
func (r *Reader) ReadOrderText(path string) (*ReadResult, error) {
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

	if err := r.validateOrderFile(path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	text, err := firstPageText(pdfReader)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text content: %w", err)
	}

	return &ReadResult{
		Text:  text,
		Path:  path,
		Pages: pdfReader.NumPage(),
		Size:  fileInfo.Size(),
	}, nil
}

// validateOrderFile performs basic validation on an order PDF file.
func (r *Reader) validateOrderFile(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() > r.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return nil
}

// firstPageText joins the first page's text fragments with single spaces.
func firstPageText(pdfReader *pdf.Reader) (string, error) {
	if pdfReader.NumPage() < 1 {
		return "", fmt.Errorf("document has no pages")
	}

	page := pdfReader.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("first page is empty")
	}

	var builder strings.Builder
	for _, fragment := range page.Content().Text {
		if fragment.S == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(fragment.S)
	}

	text := builder.String()
	if text == "" {
		return "", fmt.Errorf("no text content could be extracted from PDF")
	}

	return text, nil
}
