package episode

import (
	"fmt"

	"packing/internal/pkg/errs"
)

// Status is the lifecycle state of an Episode.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Running episodes accept steps.
	Running

	// Terminated episodes reject steps until they are reset.
	Terminated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Running:    "Running",
		Terminated: "Terminated",
	}
}

// Validate reports whether s is Running or Terminated.
func (s Status) Validate() error {
	if s != Running && s != Terminated {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values print as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus maps the output of String back to a Status.
func ParseStatus(value string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == value && status.Validate() == nil {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", value))
}

// Terminate moves a Running episode to Terminated.
//
// Returns:
//   - (Terminated, nil) on a valid transition
//   - (Unknown, ErrEpisodeTerminated) when already terminated
//   - (Unknown, error) for invalid statuses
func (s Status) Terminate() (Status, error) {
	if s == Terminated {
		return Unknown, ErrEpisodeTerminated
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Terminated, nil
}
