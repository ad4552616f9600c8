package domain

// CellType identifies the kind of a notebook cell.
type CellType string

// Recognised cell types.
const (
	CellTypeMarkdown CellType = "markdown"
	CellTypeCode     CellType = "code"
	CellTypeRaw      CellType = "raw"
)

// OutputType identifies the kind of a cell output record.
type OutputType string

// Recognised output types. Executed notebooks may carry further types
// (display_data variants); only OutputTypeError is significant for analysis.
const (
	OutputTypeError         OutputType = "error"
	OutputTypeStream        OutputType = "stream"
	OutputTypeDisplayData   OutputType = "display_data"
	OutputTypeExecuteResult OutputType = "execute_result"
)

// Notebook is the read-only in-memory representation of a notebook document.
// Cell order is execution order and display order; it is never reordered.
type Notebook struct {
	// Path is the location the notebook was read from, if any.
	Path string

	// Cells is the ordered cell sequence.
	Cells []Cell
}

// Cell is a single notebook cell.
type Cell struct {
	// Type is the cell kind (markdown, code, raw).
	Type CellType

	// Source is the cell's source text.
	Source string

	// Metadata contains arbitrary per-cell key-value pairs, including
	// the error annotation keys.
	Metadata map[string]any

	// Outputs is the ordered output sequence. Only meaningful when
	// HasOutputs is true.
	Outputs []Output

	// HasOutputs records whether the persisted cell carried an outputs
	// field at all. A present-but-empty outputs field is the desired
	// pre-commit state and is distinct from an absent one.
	HasOutputs bool
}

// Output is a single cell output record.
type Output struct {
	// Type is the output kind.
	Type OutputType

	// EValue is the error message. Populated only for OutputTypeError.
	EValue string
}

// IsError reports whether the output is an error record.
func (o Output) IsError() bool {
	return o.Type == OutputTypeError
}

// Errors returns the cell's error outputs in order.
func (c Cell) Errors() []Output {
	if !c.HasOutputs {
		return nil
	}
	var errs []Output
	for _, out := range c.Outputs {
		if out.IsError() {
			errs = append(errs, out)
		}
	}
	return errs
}
