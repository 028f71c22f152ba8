package content

import "fmt"

// SaveStatus is the lifecycle of the last save:
// idle -> saving -> saved|error -> idle.
type SaveStatus int

const (
	StatusIdle SaveStatus = iota
	StatusSaving
	StatusSaved
	StatusError
)

func (s SaveStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSaving:
		return "saving"
	case StatusSaved:
		return "saved"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("SaveStatus(%d)", int(s))
	}
}

func (s SaveStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status is a point-in-time view of the reconciler for admin clients.
type Status struct {
	Language      string     `json:"language"`
	Loading       bool       `json:"loading"`
	Error         string     `json:"error,omitempty"`
	SaveStatus    SaveStatus `json:"saveStatus"`
	Authenticated bool       `json:"authenticated"`
}
