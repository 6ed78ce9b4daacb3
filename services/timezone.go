package services

import (
	"errors"
	"fmt"
	"time"
)

// Timezone resolution errors
var (
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// Zone selects the timezone for a single factory call: an IANA identifier,
// an already-resolved *time.Location, or the zero value to use the factory's
// configured default.
type Zone struct {
	name string
	loc  *time.Location
}

// DefaultZone leaves timezone selection to the factory's configured default
var DefaultZone = Zone{}

// ZoneNamed selects a timezone by IANA identifier (e.g. "America/Bogota").
// The identifier is validated when the factory call resolves it.
func ZoneNamed(name string) Zone {
	return Zone{name: name}
}

// ZoneLocation selects an already-resolved location. It is passed through
// unchanged, without re-validation.
func ZoneLocation(loc *time.Location) Zone {
	return Zone{loc: loc}
}

// resolveZone turns a Zone into a concrete *time.Location. Resolution is
// repeated on every call; nothing is cached.
func (f *DateFactory) resolveZone(z Zone) (*time.Location, error) {
	switch {
	case z.loc != nil:
		return z.loc, nil
	case z.name != "":
		loc, err := time.LoadLocation(z.name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, z.name)
		}
		return loc, nil
	default:
		return f.defaultLoc, nil
	}
}
