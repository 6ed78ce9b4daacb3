package models

import "time"

// Instant is implemented by any value that represents a point in time.
// The factory normalizes arbitrary Instant implementations into DateTime.
type Instant interface {
	Time() time.Time
}

// DateTime is an immutable point in time paired with its timezone.
// It has value semantics: copies are always independent of the original.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps a time.Time, keeping its location as the timezone
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t}
}

// Time returns the underlying instant
func (d DateTime) Time() time.Time {
	return d.t
}

// Location returns the timezone the civil fields are projected in
func (d DateTime) Location() *time.Location {
	return d.t.Location()
}

func (d DateTime) Year() int {
	return d.t.Year()
}

func (d DateTime) Month() int {
	return int(d.t.Month())
}

func (d DateTime) Day() int {
	return d.t.Day()
}

func (d DateTime) Hour() int {
	return d.t.Hour()
}

func (d DateTime) Minute() int {
	return d.t.Minute()
}

func (d DateTime) Second() int {
	return d.t.Second()
}

// Unix returns the instant as seconds since the Unix epoch
func (d DateTime) Unix() int64 {
	return d.t.Unix()
}

// Format renders the instant with the given reference layout
func (d DateTime) Format(layout string) string {
	return d.t.Format(layout)
}

// In projects the same instant into another timezone
func (d DateTime) In(loc *time.Location) DateTime {
	return DateTime{t: d.t.In(loc)}
}

// Equal reports whether both values denote the same instant
func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t)
}

func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

func (d DateTime) String() string {
	return d.t.Format("2006-01-02 15:04:05 -07:00")
}
