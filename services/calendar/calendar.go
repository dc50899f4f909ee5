package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"campusspots/models"
	"campusspots/utils"
)

// Service serves campus events parsed from an iCal feed.
type Service interface {
	UpcomingEvents(ctx context.Context) ([]models.CampusEvent, error)
}

// DefaultCalendarService fetches and parses the configured feed on demand.
type DefaultCalendarService struct {
	FeedURL string
	Client  *http.Client
	Now     func() time.Time
}

func NewDefaultCalendarService(feedURL string) *DefaultCalendarService {
	return &DefaultCalendarService{
		FeedURL: feedURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
		Now:     time.Now,
	}
}

// UpcomingEvents returns feed events that have not ended yet, soonest first.
func (s *DefaultCalendarService) UpcomingEvents(ctx context.Context) ([]models.CampusEvent, error) {
	if s.FeedURL == "" {
		return []models.CampusEvent{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar request: %w", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar fetch failed: status %d", resp.StatusCode)
	}

	events, err := ParseEvents(resp.Body, s.Now())
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ParseEvents decodes VEVENT entries from an iCal stream, dropping events
// that already ended and entries with unparseable dates.
func ParseEvents(r io.Reader, now time.Time) ([]models.CampusEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar feed: %w", err)
	}

	events := make([]models.CampusEvent, 0)
	for _, vevent := range cal.Events() {
		start, err := vevent.GetStartAt()
		if err != nil {
			utils.GetLogger().Debug("skipping event with bad start date", zap.Error(err))
			continue
		}
		end, err := vevent.GetEndAt()
		if err != nil {
			end = start
		}
		if end.Before(now) {
			continue
		}

		events = append(events, models.CampusEvent{
			Summary:     propValue(vevent, ics.ComponentPropertySummary),
			Description: propValue(vevent, ics.ComponentPropertyDescription),
			Location:    propValue(vevent, ics.ComponentPropertyLocation),
			Start:       start,
			End:         end,
		})
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Start.Before(events[j].Start) })
	return events, nil
}

func propValue(event *ics.VEvent, prop ics.ComponentProperty) string {
	p := event.GetProperty(prop)
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Value)
}
