// Package nbformat reads Jupyter notebook files (nbformat 4 JSON) into
// the domain model.
package nbformat

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.NotebookReader = (*Reader)(nil)

// Reader parses persisted notebook files.
type Reader struct{}

// NewReader creates a notebook reader.
func NewReader() *Reader {
	return &Reader{}
}

// rawNotebook mirrors the nbformat JSON schema, restricted to the fields
// the analyzers consume.
type rawNotebook struct {
	Cells []rawCell `json:"cells"`
}

type rawCell struct {
	CellType string         `json:"cell_type"`
	Source   multilineText  `json:"source"`
	Metadata map[string]any `json:"metadata"`

	// Outputs is a pointer so an absent outputs field is distinguishable
	// from a present-but-empty one.
	Outputs *[]rawOutput `json:"outputs"`
}

type rawOutput struct {
	OutputType string        `json:"output_type"`
	EValue     multilineText `json:"evalue"`
}

// multilineText accepts the two encodings nbformat uses for text: a plain
// string or an array of line strings that concatenate verbatim.
type multilineText string

func (t *multilineText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = multilineText(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("source is neither string nor string array: %w", err)
	}
	var joined string
	for _, line := range lines {
		joined += line
	}
	*t = multilineText(joined)
	return nil
}

// Read parses the notebook at path into a fresh domain document.
func (r *Reader) Read(path string) (*domain.Notebook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse decodes notebook JSON. The path is recorded on the document so
// relative hyperlinks can resolve against the notebook's directory.
func Parse(data []byte, path string) (*domain.Notebook, error) {
	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidNotebook, err)
	}

	nb := &domain.Notebook{Path: path, Cells: make([]domain.Cell, 0, len(raw.Cells))}
	for _, rc := range raw.Cells {
		cell := domain.Cell{
			Type:     domain.CellType(rc.CellType),
			Source:   string(rc.Source),
			Metadata: rc.Metadata,
		}
		if rc.Outputs != nil {
			cell.HasOutputs = true
			cell.Outputs = make([]domain.Output, 0, len(*rc.Outputs))
			for _, ro := range *rc.Outputs {
				cell.Outputs = append(cell.Outputs, domain.Output{
					Type:   domain.OutputType(ro.OutputType),
					EValue: string(ro.EValue),
				})
			}
		}
		nb.Cells = append(nb.Cells, cell)
	}
	return nb, nil
}
