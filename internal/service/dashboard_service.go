package service

import (
	"strings"
	"time"

	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
)

type DashboardService struct {
	colleges      CollegeStore
	students      StudentStore
	events        EventStore
	fests         FestStore
	registrations RegistrationStore
	payments      PaymentStore

	now func() time.Time
}

func NewDashboardService(
	colleges CollegeStore,
	students StudentStore,
	events EventStore,
	fests FestStore,
	registrations RegistrationStore,
	payments PaymentStore,
) *DashboardService {
	return &DashboardService{
		colleges:      colleges,
		students:      students,
		events:        events,
		fests:         fests,
		registrations: registrations,
		payments:      payments,
		now:           time.Now,
	}
}

// Earnings sums paid payments across the college's events.
func (s *DashboardService) Earnings(collegeUserID uint) (*models.EarningsReport, error) {
	events, err := s.collegeEvents(collegeUserID)
	if err != nil {
		return nil, err
	}

	report := &models.EarningsReport{Breakdown: make(map[string]int)}
	for _, event := range events {
		payments, err := s.payments.GetPaidByEvent(event.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to list payments")
		}
		total := 0
		for _, p := range payments {
			total += p.Amount
		}
		report.Breakdown[event.Name] = total
		report.TotalEarnings += total
	}
	return report, nil
}

func (s *DashboardService) RegistrationStats(collegeUserID uint) (*models.RegistrationStats, error) {
	events, err := s.collegeEvents(collegeUserID)
	if err != nil {
		return nil, err
	}

	stats := &models.RegistrationStats{EventWise: make(map[string]models.EventRegistrationStats)}
	for _, event := range events {
		regs, err := s.registrations.GetByEvent(event.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to list registrations")
		}
		eventStats := models.EventRegistrationStats{}
		for _, reg := range regs {
			eventStats.Total++
			if strings.EqualFold(reg.PaymentStatus, models.PaymentStatusPaid) {
				eventStats.Paid++
			} else {
				eventStats.Unpaid++
			}
		}
		stats.EventWise[event.Name] = eventStats
		stats.TotalRegistrations += eventStats.Total
		stats.PaidRegistrations += eventStats.Paid
		stats.UnpaidRegistrations += eventStats.Unpaid
	}
	return stats, nil
}

func (s *DashboardService) StatsByFest(collegeUserID uint) (map[string]models.FestStats, error) {
	college, err := collegeForUser(s.colleges, collegeUserID)
	if err != nil {
		return nil, err
	}

	fests, err := s.fests.GetByCollege(college.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list fests")
	}

	festStats := make(map[string]models.FestStats, len(fests))
	for _, fest := range fests {
		events, err := s.events.GetByFest(fest.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to list fest events")
		}
		stats := models.FestStats{}
		for _, event := range events {
			count, err := s.registrations.CountByEvent(event.ID)
			if err != nil {
				return nil, apperr.Wrap(apperr.Internal, err, "failed to count registrations")
			}
			stats.Registrations += int(count)

			payments, err := s.payments.GetPaidByEvent(event.ID)
			if err != nil {
				return nil, apperr.Wrap(apperr.Internal, err, "failed to list payments")
			}
			for _, p := range payments {
				stats.Earnings += p.Amount
			}
		}
		festStats[fest.Name] = stats
	}
	return festStats, nil
}

func (s *DashboardService) StatsByDate(collegeUserID uint) (map[string]models.DateStats, error) {
	events, err := s.collegeEvents(collegeUserID)
	if err != nil {
		return nil, err
	}

	dateStats := make(map[string]models.DateStats)
	for _, event := range events {
		count, err := s.registrations.CountByEvent(event.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to count registrations")
		}
		payments, err := s.payments.GetPaidByEvent(event.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to list payments")
		}
		earnings := 0
		for _, p := range payments {
			earnings += p.Amount
		}

		stats := dateStats[event.EventDate]
		stats.Registrations += int(count)
		stats.Earnings += earnings
		dateStats[event.EventDate] = stats
	}
	return dateStats, nil
}

func (s *DashboardService) StudentStats(studentUserID uint) (*models.StudentDashboardStats, error) {
	student, err := s.students.GetByUserID(studentUserID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFoundOrForbidden, "student profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up student")
	}

	regs, err := s.registrations.GetByStudent(student.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list registrations")
	}

	stats := &models.StudentDashboardStats{}
	today := s.now().UTC().Truncate(24 * time.Hour)
	for _, reg := range regs {
		stats.TotalRegistrations++
		if strings.EqualFold(reg.PaymentStatus, models.PaymentStatusPaid) {
			stats.PaidRegistrations++
		} else if strings.EqualFold(reg.PaymentStatus, models.PaymentStatusPending) {
			stats.PendingPayments++
		}
		event, err := s.events.GetByID(reg.EventID)
		if err != nil {
			continue
		}
		if date, err := time.Parse(dateLayout, event.EventDate); err == nil && !date.Before(today) {
			stats.UpcomingEvents++
		}
	}
	return stats, nil
}

func (s *DashboardService) collegeEvents(collegeUserID uint) ([]models.Event, error) {
	college, err := collegeForUser(s.colleges, collegeUserID)
	if err != nil {
		return nil, err
	}
	events, err := s.events.GetByCollege(college.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list events")
	}
	return events, nil
}
