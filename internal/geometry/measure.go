package geometry

type MeasureMode int

const (
	// Unspecified lets the view take whatever size it wants.
	Unspecified MeasureMode = iota
	// AtMost caps the view at Size.
	AtMost
	// Exactly forces the view to Size.
	Exactly
)

// MeasureSpec is the constraint a host container puts on one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

func UnspecifiedSpec() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}

func AtMostSpec(size int) MeasureSpec {
	return MeasureSpec{Mode: AtMost, Size: size}
}

func ExactlySpec(size int) MeasureSpec {
	return MeasureSpec{Mode: Exactly, Size: size}
}

// ResolveSize reconciles the desired size with the container's constraint.
func ResolveSize(desired int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(desired, spec.Size)
	default:
		return desired
	}
}
