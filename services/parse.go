package services

import (
	"fmt"
	"strings"
	"time"

	"date_factory_go/models"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/now"
)

// Layouts tried, in order, before falling back to heuristic parsing.
// ISO 8601 is the standard for HTML5 date/datetime inputs.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse builds a DateTime from free-form text.
//
// Empty or blank text means the current instant. The relative vocabulary
// ("now", "midnight", "today", "tomorrow", "yesterday", optionally combined
// as "tomorrow, midnight") is handled first, then the common layouts, then a
// heuristic parser. Unparseable text fails with ErrInvalidDateTimeFormat.
func (f *DateFactory) Parse(text string, z Zone) (models.DateTime, error) {
	loc, err := f.resolveZone(z)
	if err != nil {
		return models.DateTime{}, err
	}

	s := strings.TrimSpace(text)
	if s == "" {
		return models.NewDateTime(f.snapshot(loc)), nil
	}

	if t, ok := f.parseRelative(s, loc); ok {
		return models.NewDateTime(t), nil
	}
	for _, layout := range parseLayouts {
		if t, perr := time.ParseInLocation(layout, s, loc); perr == nil {
			return models.NewDateTime(t), nil
		}
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return models.DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTimeFormat, text)
	}
	return models.NewDateTime(t), nil
}

// parseRelative handles the relative phrases the factory itself relies on.
// "today", "tomorrow" and "yesterday" already denote midnight of their day;
// a trailing ", midnight" is accepted and redundant.
func (f *DateFactory) parseRelative(s string, loc *time.Location) (time.Time, bool) {
	current := f.snapshot(loc)

	phrase := strings.ToLower(s)
	midnight := false
	if rest, found := strings.CutSuffix(phrase, "midnight"); found {
		phrase = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ","))
		midnight = true
	}

	day := current
	switch phrase {
	case "now":
		if midnight {
			return time.Time{}, false
		}
		return current, true
	case "today":
		// already midnight of the current day
	case "":
		// bare "midnight" means today at 00:00
		if !midnight {
			return time.Time{}, false
		}
	case "tomorrow":
		day = current.AddDate(0, 0, 1)
	case "yesterday":
		day = current.AddDate(0, 0, -1)
	default:
		return time.Time{}, false
	}
	return now.With(day).BeginningOfDay(), true
}
