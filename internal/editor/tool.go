package editor

// Tool selects how pointer input is applied to the grid.
type Tool int

const (
	ToolPaint Tool = iota
	ToolEraser
	ToolPicker
	ToolFill
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "paint"
	case ToolEraser:
		return "eraser"
	case ToolPicker:
		return "picker"
	case ToolFill:
		return "fill"
	}
	return "unknown"
}

// BrushSizes are the selectable brush sizes. Size n paints the centered
// (2n-1)x(2n-1) block; only Paint and Eraser consult it.
var BrushSizes = []int{1, 2, 3}
