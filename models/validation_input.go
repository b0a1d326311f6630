package models

// ValidationInput carries the optional parameters of a holiday lookup.
// A nil field means the caller did not supply it and it is exempt from
// validation.
type ValidationInput struct {
	Year    *int    `json:"year,omitempty"`
	Country *string `json:"country,omitempty"`
}
