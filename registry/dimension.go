package registry

// Dimension identifies a category of physical quantity. Units convert only
// within their own dimension; cross-dimension requests fail with
// ErrIncompatibleDimensions.
type Dimension string

// Dimensions covered by the builtin catalog. Custom catalogs may register
// dimensions beyond this set; the type is open by design.
const (
	// Length is linear extent, based on the meter.
	Length Dimension = "length"

	// Mass is the amount of matter, based on the kilogram.
	Mass Dimension = "mass"

	// Time is duration, based on the second.
	Time Dimension = "time"

	// Temperature is thermodynamic temperature, based on the kelvin.
	// Its units are affine, not linear.
	Temperature Dimension = "temperature"

	// Volume is three-dimensional extent, based on the liter.
	Volume Dimension = "volume"

	// Area is two-dimensional extent, based on the square meter.
	Area Dimension = "area"

	// Speed is distance over time, based on the meter per second.
	Speed Dimension = "speed"

	// Data is digital information size, based on the byte.
	Data Dimension = "data"
)

func (d Dimension) String() string { return string(d) }
