package service

import (
	"sort"
	"strings"
	"time"

	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
)

// ExploreService serves the public, unauthenticated browse endpoints.
type ExploreService struct {
	colleges      CollegeStore
	fests         FestStore
	events        EventStore
	registrations RegistrationStore
}

func NewExploreService(colleges CollegeStore, fests FestStore, events EventStore, registrations RegistrationStore) *ExploreService {
	return &ExploreService{
		colleges:      colleges,
		fests:         fests,
		events:        events,
		registrations: registrations,
	}
}

func (s *ExploreService) Fests(q models.ExploreFestQuery) ([]models.Fest, error) {
	fests, err := s.fests.GetAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list fests")
	}
	collegeNames, err := s.collegeNames()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Fest, 0, len(fests))
	for _, fest := range fests {
		if q.Name != "" && !containsFold(fest.Name, q.Name) {
			continue
		}
		if q.College != "" && !containsFold(collegeNames[fest.CollegeID], q.College) {
			continue
		}
		if q.StartDate != "" && fest.StartDate < q.StartDate {
			continue
		}
		if q.EndDate != "" && fest.EndDate > q.EndDate {
			continue
		}
		filtered = append(filtered, fest)
	}
	return filtered, nil
}

func (s *ExploreService) Events(q models.ExploreEventQuery) ([]models.Event, error) {
	events, err := s.events.GetAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list events")
	}
	collegeNames, err := s.collegeNames()
	if err != nil {
		return nil, err
	}
	festNames, err := s.festNames()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Event, 0, len(events))
	for _, event := range events {
		if q.Category != "" && !strings.EqualFold(event.Category, q.Category) {
			continue
		}
		if q.Mode != "" && !strings.EqualFold(event.Mode, q.Mode) {
			continue
		}
		if q.Date != "" && event.EventDate != q.Date {
			continue
		}
		if q.EntryFee != "" {
			free := event.Fees == 0
			if strings.EqualFold(q.EntryFee, "free") && !free {
				continue
			}
			if strings.EqualFold(q.EntryFee, "paid") && free {
				continue
			}
		}
		if q.Team != nil && event.TeamAllowed != *q.Team {
			continue
		}
		if q.FestName != "" {
			if event.FestID == nil || !containsFold(festNames[*event.FestID], q.FestName) {
				continue
			}
		}
		if q.College != "" && !containsFold(collegeNames[event.CollegeID], q.College) {
			continue
		}
		if q.Location != "" && !containsFold(event.Location, q.Location) {
			continue
		}
		filtered = append(filtered, event)
	}

	if err := s.sortEvents(filtered, q.Sort); err != nil {
		return nil, err
	}
	return filtered, nil
}

func (s *ExploreService) sortEvents(events []models.Event, order string) error {
	switch order {
	case "", "date_asc":
		sort.SliceStable(events, func(i, j int) bool {
			return eventTime(events[i]).Before(eventTime(events[j]))
		})
	case "date_desc":
		sort.SliceStable(events, func(i, j int) bool {
			return eventTime(events[j]).Before(eventTime(events[i]))
		})
	case "fee_asc":
		sort.SliceStable(events, func(i, j int) bool { return events[i].Fees < events[j].Fees })
	case "fee_desc":
		sort.SliceStable(events, func(i, j int) bool { return events[i].Fees > events[j].Fees })
	case "popularity":
		counts := make(map[uint]int64, len(events))
		for _, event := range events {
			count, err := s.registrations.CountByEvent(event.ID)
			if err != nil {
				return apperr.Wrap(apperr.Internal, err, "failed to count registrations")
			}
			counts[event.ID] = count
		}
		sort.SliceStable(events, func(i, j int) bool {
			return counts[events[i].ID] > counts[events[j].ID]
		})
	default:
		return apperr.Newf(apperr.Validation, "unsupported sort %q", order)
	}
	return nil
}

func (s *ExploreService) collegeNames() (map[uint]string, error) {
	colleges, err := s.colleges.GetAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list colleges")
	}
	names := make(map[uint]string, len(colleges))
	for _, c := range colleges {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *ExploreService) festNames() (map[uint]string, error) {
	fests, err := s.fests.GetAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list fests")
	}
	names := make(map[uint]string, len(fests))
	for _, f := range fests {
		names[f.ID] = f.Name
	}
	return names, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Unparseable dates sort last.
func eventTime(e models.Event) time.Time {
	t, err := time.Parse(dateLayout, e.EventDate)
	if err != nil {
		return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return t
}
