package resolver

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateParser interprets a human-readable date string. Only success or
// failure matters to the resolver.
type DateParser interface {
	Parse(s string) (time.Time, error)
}

// DateparseParser adapts github.com/araddon/dateparse to DateParser.
type DateparseParser struct {
	// Location applies to input without an explicit zone. Nil means UTC.
	Location *time.Location
	// PreferMonthFirst reads "04/05/2020" as April 5.
	PreferMonthFirst bool
	// RetryAmbiguous swaps day and month when the preferred order yields an
	// impossible date, so "13/04/1983" still parses.
	RetryAmbiguous bool
}

// DefaultDateParser returns the parser used when none is configured.
func DefaultDateParser() DateparseParser {
	return DateparseParser{
		Location:         time.UTC,
		PreferMonthFirst: true,
		RetryAmbiguous:   true,
	}
}

// errNoYear marks input dateparse accepted without finding a year in it.
var errNoYear = errors.New("date has no year")

func (p DateparseParser) Parse(s string) (time.Time, error) {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	t, err := dateparse.ParseIn(strings.TrimSpace(s), loc,
		dateparse.PreferMonthFirst(p.PreferMonthFirst),
		dateparse.RetryAmbiguousDateWithSwap(p.RetryAmbiguous),
	)
	if err != nil {
		return time.Time{}, err
	}
	// Fragments such as "12:" or "1/" parse with year 0.
	if t.Year() == 0 {
		return time.Time{}, errNoYear
	}
	return t, nil
}
