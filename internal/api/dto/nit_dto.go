package dto

// NITValidateRequest payload for POST /nit/validate.
type NITValidateRequest struct {
	NIT string `json:"nit"`
}

// NITValidateResponse carries the canonical base and its check digit.
type NITValidateResponse struct {
	Base      string `json:"base"`
	DV        int    `json:"dv"`
	Formatted string `json:"formatted"`
}
