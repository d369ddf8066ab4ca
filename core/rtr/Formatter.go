package rtr

import "strconv"

// Formatter converts one raw path segment into its typed value.
// Get one through formatterFor; the zero Formatter is not usable.
type Formatter struct {
	convert func(s string) (any, error)
}

// IsConvertible reports whether Convert would succeed for s.
func (f Formatter) IsConvertible(s string) bool {
	_, err := f.convert(s)
	return err == nil
}

// Convert performs the conversion.
func (f Formatter) Convert(s string) (any, error) {
	return f.convert(s)
}

var (
	intFormatter = Formatter{convert: func(s string) (any, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return n, nil
	}}

	floatFormatter = Formatter{convert: func(s string) (any, error) {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	}}

	// stringFormatter passes the segment through and never fails.
	stringFormatter = Formatter{convert: func(s string) (any, error) {
		return s, nil
	}}
)

// formatterFor resolves a placeholder type tag to its formatter.
// Unknown or absent tags fall back to the string formatter.
func formatterFor(typeTag string) Formatter {
	switch typeTag {
	case "int":
		return intFormatter
	case "float":
		return floatFormatter
	default:
		return stringFormatter
	}
}
