package model

// Axis identifies one of the three container axes.
type Axis int

const (
	AxisLength Axis = iota // Along the container length
	AxisWidth              // Along the container width
	AxisHeight             // Vertical
)

func (a Axis) String() string {
	switch a {
	case AxisLength:
		return "Length"
	case AxisWidth:
		return "Width"
	default:
		return "Height"
	}
}

// Dimensions3D holds the three extents of a rectangular solid in inches.
// The labels carry no physical meaning until an orientation is chosen.
type Dimensions3D struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Volume returns the enclosed volume in cubic inches.
func (d Dimensions3D) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// MinExtent returns the smallest of the three extents.
func (d Dimensions3D) MinExtent() float64 {
	m := d.Length
	if d.Width < m {
		m = d.Width
	}
	if d.Height < m {
		m = d.Height
	}
	return m
}

// MaxExtent returns the largest of the three extents.
func (d Dimensions3D) MaxExtent() float64 {
	m := d.Length
	if d.Width > m {
		m = d.Width
	}
	if d.Height > m {
		m = d.Height
	}
	return m
}

// Positive reports whether all three extents are strictly positive.
func (d Dimensions3D) Positive() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0
}

// Extent returns the extent along the given container axis.
func (d Dimensions3D) Extent(a Axis) float64 {
	switch a {
	case AxisLength:
		return d.Length
	case AxisWidth:
		return d.Width
	default:
		return d.Height
	}
}

// Rotation is one of the six axis-aligned orientations of a rectangular
// unit inside a container. The value names read as the unit extents
// (L/W/H) assigned, in order, to the container's length, width and height
// axes. Enumeration order is fixed so that score ties resolve the same
// way on every run.
type Rotation int

const (
	RotationLWH Rotation = iota // unit L->length, W->width, H->height
	RotationLHW                 // unit L->length, H->width, W->height
	RotationWLH                 // unit W->length, L->width, H->height
	RotationWHL                 // unit W->length, H->width, L->height
	RotationHLW                 // unit H->length, L->width, W->height
	RotationHWL                 // unit H->length, W->width, L->height
)

// AllRotations lists the six rotations in their fixed enumeration order.
var AllRotations = [6]Rotation{
	RotationLWH, RotationLHW, RotationWLH, RotationWHL, RotationHLW, RotationHWL,
}

func (r Rotation) String() string {
	switch r {
	case RotationLWH:
		return "LWH"
	case RotationLHW:
		return "LHW"
	case RotationWLH:
		return "WLH"
	case RotationWHL:
		return "WHL"
	case RotationHLW:
		return "HLW"
	case RotationHWL:
		return "HWL"
	default:
		return "LWH"
	}
}

// Apply permutes the unit extents into container-axis order. The mapping
// is total: any out-of-range value behaves as RotationLWH.
func (r Rotation) Apply(d Dimensions3D) Dimensions3D {
	switch r {
	case RotationLHW:
		return Dimensions3D{Length: d.Length, Width: d.Height, Height: d.Width}
	case RotationWLH:
		return Dimensions3D{Length: d.Width, Width: d.Length, Height: d.Height}
	case RotationWHL:
		return Dimensions3D{Length: d.Width, Width: d.Height, Height: d.Length}
	case RotationHLW:
		return Dimensions3D{Length: d.Height, Width: d.Length, Height: d.Width}
	case RotationHWL:
		return Dimensions3D{Length: d.Height, Width: d.Width, Height: d.Length}
	default:
		return d
	}
}

// CompressionAllowance is the fractional amount by which a unit's packed
// footprint shrinks along each container axis, modeling crushable
// packaging. Each value must be in [0, 1). It applies after rotation, so
// the axes here are container axes, not unit axes.
type CompressionAllowance struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether every factor is in [0, 1).
func (c CompressionAllowance) Valid() bool {
	for _, f := range []float64{c.Length, c.Width, c.Height} {
		if f < 0 || f >= 1 {
			return false
		}
	}
	return true
}

// Apply shrinks the given container-axis extents by the per-axis factors.
func (c CompressionAllowance) Apply(d Dimensions3D) Dimensions3D {
	return Dimensions3D{
		Length: d.Length * (1 - c.Length),
		Width:  d.Width * (1 - c.Width),
		Height: d.Height * (1 - c.Height),
	}
}
