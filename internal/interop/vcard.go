// Package interop converts person records to and from interchange formats:
// vCard address books, iCalendar birthday feeds and XLSX spreadsheets.
package interop

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/sport"
	"github.com/tartampluch/go-people/internal/store"
)

// ExportVCard writes one vCard 4.0 per person, in list order.
func ExportVCard(w io.Writer, people store.People) error {
	enc := vcard.NewEncoder(w)
	for _, p := range people {
		if err := enc.Encode(toCard(p)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	slog.Info(config.MsgCardsWritten,
		config.LogKeyComponent, config.CompInterop,
		config.LogKeyCount, len(people))
	return nil
}

func toCard(p store.Person) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, p.FullName())
	card.SetName(&vcard.Name{
		GivenName:  p.FirstName,
		FamilyName: p.LastName,
	})
	card.SetValue(vcard.FieldBirthday, p.DateOfBirth.Format(config.VCardBDAYFormat))
	card.SetValue(config.VCardFieldSport, p.FavoriteSport.Label())
	return card
}

// ImportVCard decodes every card of r into a new record drawn from s.
// Cards that cannot be decoded or carry no name are skipped. A missing or
// unreadable birthday falls back to the default date.
func ImportVCard(r io.Reader, s *store.Store) (store.People, error) {
	decoder := vcard.NewDecoder(r)
	people := store.People{}
	skipped := 0

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			// Truncated trailing card: nothing left to recover.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyError, err)
			skipped++
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyError, err)
			skipped++
			continue
		}

		first, last, ok := cardName(card)
		if !ok {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyError, config.ErrMissingName)
			skipped++
			continue
		}

		dob := store.DefaultDateOfBirth()
		if bday := card.Value(vcard.FieldBirthday); bday != "" {
			if parsed, err := parseDate(bday); err == nil {
				dob = parsed
			} else {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompInterop,
					config.LogKeyValue, bday)
			}
		}

		favorite := store.DefaultSport()
		if value := strings.TrimSpace(card.Value(config.VCardFieldSport)); value != "" {
			favorite = sport.Parse(value)
		}

		people.Add(s.Create(first, last, dob, favorite))
	}

	slog.Info(config.MsgCardsImported,
		config.LogKeyComponent, config.CompInterop,
		config.LogKeyCount, len(people),
		config.LogKeySkipped, skipped)
	return people, nil
}

// cardName picks the structured name when present, else splits the
// formatted name at its first space. Either half may fall back to "Unknown".
func cardName(card vcard.Card) (first, last string, ok bool) {
	if n := card.Name(); n != nil && (n.GivenName != "" || n.FamilyName != "") {
		return orFallback(n.GivenName), orFallback(n.FamilyName), true
	}

	fn := strings.TrimSpace(card.Value(vcard.FieldFormattedName))
	if fn == "" {
		return "", "", false
	}
	first, last, _ = strings.Cut(fn, config.NameSeparator)
	return orFallback(first), orFallback(strings.TrimSpace(last)), true
}

func orFallback(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return config.FallbackName
	}
	return s
}

// parseDate handles the vCard date forms. Dates without a year are placed
// in a leap year so that --02-29 stays valid.
func parseDate(value string) (time.Time, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	for _, f := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}
