package interop

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-people/internal/config"
	"github.com/tartampluch/go-people/internal/store"
)

// SummaryFunc renders the title of a birthday event. age is the age reached
// on that birthday, 0 for the birth itself.
type SummaryFunc func(name string, age int) string

// DefaultSummary is the untranslated event title.
func DefaultSummary(name string, age int) string {
	if age == 0 {
		return fmt.Sprintf(config.FallbackSummary, name)
	}
	return fmt.Sprintf(config.FallbackSummaryAge, name, age)
}

// ExportCalendar writes an iCalendar feed with one all-day event per person
// for the previous, current and next year around now. No event is created
// before the year of birth. UIDs only depend on name and birth date, so a
// re-export replaces the previous events in calendar clients.
func ExportCalendar(w io.Writer, people store.People, now time.Time, summary SummaryFunc) error {
	if summary == nil {
		summary = DefaultSummary
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, p := range people {
		for _, e := range createEvents(p, now, summary) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		// An empty VCALENDAR is rejected by the encoder but valid for clients.
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
		}
		logCalendar(len(people), 0)
		return nil
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	logCalendar(len(people), len(cal.Children))
	return nil
}

func logCalendar(people, events int) {
	slog.Info(config.MsgCalendarWritten,
		config.LogKeyComponent, config.CompInterop,
		config.LogKeyCount, people,
		config.LogKeyEvents, events)
}

// eventUID is stable across exports for the same name and birth date.
func eventUID(p store.Person) string {
	input := fmt.Sprintf(config.FormatHashInput, p.FullName(), p.DateOfBirth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

func createEvents(p store.Person, now time.Time, summary SummaryFunc) []*ical.Event {
	currentYear := now.Year()
	uidBase := eventUID(p)
	name := p.FullName()
	birth := p.DateOfBirth

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < birth.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary(name, y-birth.Year()))

		// time.Date moves Feb 29 to Mar 1 in common years.
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC))
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}
