package models

// KeyLookup is the JSON view of a successful lookup returned to API clients
// that ask for application/json.
type KeyLookup struct {
	// Firmware is the firmware identifier that was requested.
	Firmware string `json:"fw"`

	// Field is the name of the manufacturing field that was read.
	Field string `json:"field"`

	// Secret is the stored manufacturing secret, returned as-is.
	Secret string `json:"secret"`
}
