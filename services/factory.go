package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"date_factory_go/config"
	"date_factory_go/models"

	"github.com/jinzhu/now"
)

// Date/time construction errors
var (
	ErrInvalidDateTimeFields = errors.New("invalid date/time fields")
	ErrInvalidDateTimeFormat = errors.New("invalid date/time format")
)

// civilLayout is the fixed pattern assembled Create fields are validated
// against. time.ParseInLocation is strict, so impossible calendar dates
// (February 30, month 13, hour 24) are rejected rather than normalized.
const civilLayout = "2006-01-02 15:04:05"

// time.Time stores seconds counted from year 1 in an int64, so only Unix
// timestamps inside this window survive the conversion without overflow.
// unixToInternal is the second count between year 1 and the Unix epoch.
const (
	unixToInternal = 62135596800
	maxUnixSeconds = math.MaxInt64 - unixToInternal
	minUnixSeconds = math.MinInt64 + unixToInternal
)

// DateFactory builds DateTime values from heterogeneous inputs - the current
// clock, relative phrases, partial civil fields, format strings and Unix
// timestamps - applying one deterministic defaulting and timezone policy.
// It is stateless apart from the configured default timezone and safe for
// concurrent use.
type DateFactory struct {
	defaultLoc *time.Location
	clock      func() time.Time
}

// NewDateFactory creates a factory whose absent-timezone fallback is the
// configured default timezone
func NewDateFactory(cfg *config.Config) (*DateFactory, error) {
	loc, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, cfg.DefaultTimezone)
	}
	return &DateFactory{
		defaultLoc: loc,
		clock:      time.Now,
	}, nil
}

// snapshot reads the clock once and projects it into loc. Every operation
// that defaults fields from "now" works from a single snapshot, so a clock
// tick cannot split the date fields from the time fields.
func (f *DateFactory) snapshot(loc *time.Location) time.Time {
	return f.clock().In(loc)
}

// Instance normalizes any Instant into a DateTime. Values that already are
// DateTime are copied; foreign implementations are rebuilt from their
// instant. Either way the result shares no state with the input.
func (f *DateFactory) Instance(v models.Instant) models.DateTime {
	if d, ok := v.(models.DateTime); ok {
		return d
	}
	return models.NewDateTime(v.Time())
}

// Now returns the current instant in the resolved timezone
func (f *DateFactory) Now(z Zone) (models.DateTime, error) {
	loc, err := f.resolveZone(z)
	if err != nil {
		return models.DateTime{}, err
	}
	return models.NewDateTime(f.snapshot(loc)), nil
}

// Today returns today at 00:00:00 in the resolved timezone
func (f *DateFactory) Today(z Zone) (models.DateTime, error) {
	return f.dayAt(0, z)
}

// Tomorrow returns tomorrow at 00:00:00 in the resolved timezone
func (f *DateFactory) Tomorrow(z Zone) (models.DateTime, error) {
	return f.dayAt(1, z)
}

// Yesterday returns yesterday at 00:00:00 in the resolved timezone
func (f *DateFactory) Yesterday(z Zone) (models.DateTime, error) {
	return f.dayAt(-1, z)
}

// dayAt truncates today+offset days to midnight in the resolved timezone.
// AddDate handles DST correctly, Add(24h) does not.
func (f *DateFactory) dayAt(offsetDays int, z Zone) (models.DateTime, error) {
	loc, err := f.resolveZone(z)
	if err != nil {
		return models.DateTime{}, err
	}
	day := f.snapshot(loc).AddDate(0, 0, offsetDays)
	return models.NewDateTime(now.With(day).BeginningOfDay()), nil
}

// Fields is a partial set of civil fields for Create. Nil members default
// according to the policy documented on Create.
type Fields struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
	Second *int
}

// Int is a convenience for building Fields literals
func Int(v int) *int {
	return &v
}

// Create builds a DateTime from partial civil fields.
//
// Unset year/month/day always default to the current date. When hour is
// unset, the time of day defaults to the current time field by field. When
// hour is set, unset minute and second default to 0: supplying an hour
// signals that exact time fields are wanted, so the omitted ones must not
// inherit live-clock jitter.
//
// The assembled fields are validated strictly; impossible dates fail with
// ErrInvalidDateTimeFields.
func (f *DateFactory) Create(fields Fields, z Zone) (models.DateTime, error) {
	loc, err := f.resolveZone(z)
	if err != nil {
		return models.DateTime{}, err
	}

	current := f.snapshot(loc)

	year := valueOr(fields.Year, current.Year())
	month := valueOr(fields.Month, int(current.Month()))
	day := valueOr(fields.Day, current.Day())

	var hour, minute, second int
	if fields.Hour != nil {
		hour = *fields.Hour
		minute = valueOr(fields.Minute, 0)
		second = valueOr(fields.Second, 0)
	} else {
		hour = current.Hour()
		minute = valueOr(fields.Minute, current.Minute())
		second = valueOr(fields.Second, current.Second())
	}

	assembled := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, minute, second)
	t, err := time.ParseInLocation(civilLayout, assembled, loc)
	if err != nil {
		return models.DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTimeFields, assembled)
	}
	return models.NewDateTime(t), nil
}

// CreateFromDate builds a DateTime from a calendar date, keeping the current
// time of day
func (f *DateFactory) CreateFromDate(year, month, day *int, z Zone) (models.DateTime, error) {
	return f.Create(Fields{Year: year, Month: month, Day: day}, z)
}

// CreateFromTime builds a DateTime from a time of day on the current date
func (f *DateFactory) CreateFromTime(hour, minute, second *int, z Zone) (models.DateTime, error) {
	return f.Create(Fields{Hour: hour, Minute: minute, Second: second}, z)
}

// CreateFromFormat parses value against a reference layout.
//
// With DefaultZone the engine's own zoneless semantics apply (time.Parse,
// which reads zoneless input as UTC); any other Zone is resolved first and
// interprets zoneless input. Parse failures carry the engine's diagnostic.
func (f *DateFactory) CreateFromFormat(layout, value string, z Zone) (models.DateTime, error) {
	var t time.Time
	var err error
	if z == DefaultZone {
		t, err = time.Parse(layout, value)
	} else {
		loc, rerr := f.resolveZone(z)
		if rerr != nil {
			return models.DateTime{}, rerr
		}
		t, err = time.ParseInLocation(layout, value, loc)
	}
	if err != nil {
		return models.DateTime{}, fmt.Errorf("%w: %v", ErrInvalidDateTimeFormat, err)
	}
	return f.Instance(models.NewDateTime(t)), nil
}

// CreateFromTimestamp builds a DateTime from seconds since the Unix epoch,
// projected into the resolved timezone
func (f *DateFactory) CreateFromTimestamp(ts int64, z Zone) (models.DateTime, error) {
	loc, err := f.resolveZone(z)
	if err != nil {
		return models.DateTime{}, err
	}
	return models.NewDateTime(time.Unix(ts, 0).In(loc)), nil
}

// CreateFromTimestampUTC builds a DateTime from seconds since the Unix
// epoch, fixed to UTC
func (f *DateFactory) CreateFromTimestampUTC(ts int64) models.DateTime {
	return models.NewDateTime(time.Unix(ts, 0).UTC())
}

// MaxValue returns the latest instant whose Unix timestamp the engine can
// represent, in the default timezone
func (f *DateFactory) MaxValue() models.DateTime {
	d, _ := f.CreateFromTimestamp(maxUnixSeconds, DefaultZone)
	return d
}

// MinValue returns the earliest instant whose Unix timestamp the engine can
// represent, in the default timezone
func (f *DateFactory) MinValue() models.DateTime {
	d, _ := f.CreateFromTimestamp(minUnixSeconds, DefaultZone)
	return d
}

func valueOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
