// Package feed exports the selected day as an iCalendar document so other
// calendar clients can subscribe to it.
package feed

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-monthgrid/internal/config"
	"github.com/tartampluch/go-monthgrid/internal/grid"
)

// Generator turns a selected date into a VCALENDAR holding one all-day VEVENT.
type Generator struct {
	Clock grid.Clock // Interface for time mocking.

	// FormatSummary allows the UI to inject a localized event title.
	FormatSummary func(date time.Time) string
}

// Build renders the feed for date. A zero date means nothing is selected and
// yields an empty but valid calendar.
func (g *Generator) Build(date time.Time) ([]byte, error) {
	if date.IsZero() {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	key := day.Format(config.DateFormatFullDash)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uid(key))

	summary := fmt.Sprintf(config.FallbackSummary, key)
	if g.FormatSummary != nil {
		summary = g.FormatSummary(day)
	}
	event.Props.SetText(config.PropSummary, summary)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(g.now().UTC())
	event.Props.Set(dtStamp)

	// All-day events end on the following date (exclusive).
	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(day)
	event.Props.Set(dtStart)

	dtEnd := ical.NewProp(config.PropDTEnd)
	dtEnd.SetDate(day.AddDate(0, 0, 1))
	event.Props.Set(dtEnd)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgFeedUpdated,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeyDate, key,
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}

// uid is stable for a given date so clients update the event instead of duplicating it.
func uid(key string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf(config.FormatHashInput, config.UIDSalt, key)))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}
