package store

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/sport"
)

// Person is one record of the store.
type Person struct {
	// ID is assigned by a Store on creation or load. It is never persisted.
	ID uint64

	FirstName string
	LastName  string

	// DateOfBirth is a calendar date at midnight UTC.
	DateOfBirth time.Time

	FavoriteSport sport.Sport
}

// FullName joins first and last name with a space.
func (p Person) FullName() string {
	return p.FirstName + config.NameSeparator + p.LastName
}

// Age is the number of whole 365-day periods between the birth date and
// today's calendar date. It is recomputed on every call. Birth dates in the
// future yield 0.
func (p Person) Age(today time.Time) int {
	// Seconds rather than a Duration, which overflows past 292 years.
	days := int((civilDate(today).Unix() - civilDate(p.DateOfBirth).Unix()) / config.SecondsPerDay)
	if days < 0 {
		return 0
	}
	return days / config.DaysPerYear
}

// DefaultDateOfBirth is used when no parsable birth date is supplied.
func DefaultDateOfBirth() time.Time {
	return time.Date(config.DefaultBirthYear, config.DefaultBirthMonth, config.DefaultBirthDay, 0, 0, 0, 0, time.UTC)
}

// DefaultSport is used when no favorite sport is supplied.
func DefaultSport() sport.Sport {
	return sport.Other(config.FallbackSport)
}

// ParseDate strictly parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(config.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", config.ErrDateParse, value, err)
	}
	return t, nil
}

// civilDate drops the clock and zone, keeping the calendar date as seen in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Draft carries optional textual field values. An empty field means "not
// supplied".
type Draft struct {
	FirstName     string
	LastName      string
	DateOfBirth   string
	FavoriteSport string
}

// Apply overwrites the fields of p that d supplies and returns the result.
// The identifier is kept. Unlike creation, an unparsable date is an error.
func (d Draft) Apply(p Person) (Person, error) {
	if d.FirstName != "" {
		p.FirstName = d.FirstName
	}
	if d.LastName != "" {
		p.LastName = d.LastName
	}
	if d.DateOfBirth != "" {
		dob, err := ParseDate(d.DateOfBirth)
		if err != nil {
			return p, err
		}
		p.DateOfBirth = dob
	}
	if d.FavoriteSport != "" {
		p.FavoriteSport = sport.Parse(d.FavoriteSport)
	}
	return p, nil
}

// People is the ordered, index-addressed list of records. Order is file order.
type People []Person

// Add appends p.
func (ps *People) Add(p Person) {
	*ps = append(*ps, p)
}

// Delete removes the record at index. The list is left untouched on error.
func (ps *People) Delete(index int) error {
	if index < 0 || index >= len(*ps) {
		return indexError(index, len(*ps))
	}
	*ps = append((*ps)[:index], (*ps)[index+1:]...)
	return nil
}

// Edit replaces the record at index wholesale. Callers build the replacement,
// typically from a copy of the current record.
func (ps People) Edit(index int, p Person) error {
	if index < 0 || index >= len(ps) {
		return indexError(index, len(ps))
	}
	ps[index] = p
	return nil
}
