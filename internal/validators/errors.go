package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrCountryNotSupported = errors.New("country provided is not supported")
	ErrYearNotCurrent      = errors.New("year provided not the current")
)
