package frame

import "github.com/katalvlaran/gradviz/slice"

// Document is the plain-data form of a Frame for external plotting tools.
// It carries no pointers into the Frame, so it can be encoded, compared
// and retained independently.
type Document struct {
	Function   string        `json:"function" yaml:"function"`
	Label      string        `json:"label" yaml:"label"`
	ArrowScale float64       `json:"arrow_scale" yaml:"arrow_scale"`
	Surface    SurfaceDoc    `json:"surface" yaml:"surface"`
	Point      [3]float64    `json:"point" yaml:"point"`         // (px, py, pz)
	Gradient   [2]float64    `json:"gradient" yaml:"gradient"`   // (gx, gy)
	Steepness  float64       `json:"steepness" yaml:"steepness"` // |∇f|
	Arrow      [2][2]float64 `json:"arrow" yaml:"arrow"`         // tail, head
	Slices     []SliceDoc    `json:"slices" yaml:"slices"`
	Metrics    Metrics       `json:"metrics" yaml:"metrics"`
}

// SurfaceDoc is the sampled grid: z[i][j] = f(x[j], y[i]).
type SurfaceDoc struct {
	X    []float64   `json:"x" yaml:"x"`
	Y    []float64   `json:"y" yaml:"y"`
	Z    [][]float64 `json:"z" yaml:"z"`
	ZMin float64     `json:"z_min" yaml:"z_min"`
	ZMax float64     `json:"z_max" yaml:"z_max"`
}

// SliceDoc is one slice with its tangent endpoints.
type SliceDoc struct {
	Axis    string        `json:"axis" yaml:"axis"`
	Title   string        `json:"title" yaml:"title"`
	Fixed   float64       `json:"fixed" yaml:"fixed"`
	T       []float64     `json:"t" yaml:"t"`
	Z       []float64     `json:"z" yaml:"z"`
	Slope   float64       `json:"slope" yaml:"slope"`
	Tangent [2][2]float64 `json:"tangent" yaml:"tangent"` // (t, z) endpoints
}

// Export copies the frame into a Document.
func (f *Frame) Export() Document {
	zmin, zmax := f.Grid.ZRange()

	return Document{
		Function:   string(f.Input.Function),
		Label:      f.Label,
		ArrowScale: f.Arrow.Scale,
		Surface: SurfaceDoc{
			X:    append([]float64(nil), f.Grid.Xs...),
			Y:    append([]float64(nil), f.Grid.Ys...),
			Z:    f.Grid.Rows(),
			ZMin: zmin,
			ZMax: zmax,
		},
		Point:     [3]float64{f.Probe.Point.X, f.Probe.Point.Y, f.Probe.Z},
		Gradient:  [2]float64{f.Probe.Gradient.X, f.Probe.Gradient.Y},
		Steepness: f.Probe.Gradient.Norm(),
		Arrow: [2][2]float64{
			{f.Arrow.Tail.X, f.Arrow.Tail.Y},
			{f.Arrow.Head.X, f.Arrow.Head.Y},
		},
		Slices:  []SliceDoc{exportSlice(f.XSlice), exportSlice(f.YSlice)},
		Metrics: f.Metrics(),
	}
}

func exportSlice(s slice.Slice) SliceDoc {
	return SliceDoc{
		Axis:  s.Axis.String(),
		Title: s.Title(),
		Fixed: s.Fixed,
		T:     append([]float64(nil), s.Coords...),
		Z:     append([]float64(nil), s.Values...),
		Slope: s.Slope,
		Tangent: [2][2]float64{
			{s.Tangent.From.T, s.Tangent.From.Z},
			{s.Tangent.To.T, s.Tangent.To.Z},
		},
	}
}
