package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
)

type dashboardFixture struct {
	svc           *DashboardService
	colleges      *fakeColleges
	students      *fakeStudents
	events        *fakeEvents
	fests         *fakeFests
	registrations *fakeRegistrations
	payments      *fakePayments
}

func setupDashboardService(t *testing.T) *dashboardFixture {
	t.Helper()
	registrations := newFakeRegistrations()
	f := &dashboardFixture{
		colleges:      newFakeColleges(),
		students:      newFakeStudents(),
		events:        newFakeEvents(),
		fests:         newFakeFests(),
		registrations: registrations,
		payments:      newFakePayments(registrations),
	}
	f.svc = NewDashboardService(f.colleges, f.students, f.events, f.fests, f.registrations, f.payments)
	return f
}

// seed builds one college with a fest of two events, registrations and
// one settled payment per paid registration.
func (f *dashboardFixture) seed(t *testing.T) {
	t.Helper()
	college, err := f.colleges.Create(&models.College{UserID: 10, Name: "IIT Delhi"})
	require.NoError(t, err)
	fest, err := f.fests.Create(&models.Fest{
		CollegeID: college.ID, Name: "Rendezvous", StartDate: "2026-10-01", EndDate: "2026-10-04",
	})
	require.NoError(t, err)

	robowars, err := f.events.Create(&models.Event{
		CollegeID: college.ID, FestID: &fest.ID, Name: "Robowars", EventDate: "2026-10-02", Fees: 500, Capacity: 100,
	})
	require.NoError(t, err)
	quiz, err := f.events.Create(&models.Event{
		CollegeID: college.ID, Name: "Quiz", EventDate: "2026-10-03", Fees: 0, Capacity: 50,
	})
	require.NoError(t, err)

	paidReg, err := f.registrations.Create(&models.EventRegistration{
		EventID: robowars.ID, StudentID: 1, PaymentStatus: models.PaymentStatusPaid,
	})
	require.NoError(t, err)
	_, err = f.registrations.Create(&models.EventRegistration{
		EventID: robowars.ID, StudentID: 2, PaymentStatus: models.PaymentStatusPending,
	})
	require.NoError(t, err)
	_, err = f.registrations.Create(&models.EventRegistration{
		EventID: quiz.ID, StudentID: 1, PaymentStatus: models.PaymentStatusPaid,
	})
	require.NoError(t, err)

	_, err = f.payments.Create(&models.Payment{
		RegistrationID: paidReg.ID, RazorpayOrderID: "order_1",
		Status: models.PaymentStatusPaid, Amount: 500, Currency: "INR",
	})
	require.NoError(t, err)
}

func TestEarnings(t *testing.T) {
	f := setupDashboardService(t)
	f.seed(t)

	report, err := f.svc.Earnings(10)
	require.NoError(t, err)
	require.Equal(t, 500, report.TotalEarnings)
	require.Equal(t, 500, report.Breakdown["Robowars"])
	require.Equal(t, 0, report.Breakdown["Quiz"])
}

func TestEarnings_NoCollegeProfile(t *testing.T) {
	f := setupDashboardService(t)

	_, err := f.svc.Earnings(99)
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundOrForbidden, apperr.KindOf(err))
}

func TestRegistrationStats(t *testing.T) {
	f := setupDashboardService(t)
	f.seed(t)

	stats, err := f.svc.RegistrationStats(10)
	require.NoError(t, err)
	require.Equal(t, 3, stats.TotalRegistrations)
	require.Equal(t, 2, stats.PaidRegistrations)
	require.Equal(t, 1, stats.UnpaidRegistrations)
	require.Equal(t, models.EventRegistrationStats{Total: 2, Paid: 1, Unpaid: 1}, stats.EventWise["Robowars"])
	require.Equal(t, models.EventRegistrationStats{Total: 1, Paid: 1}, stats.EventWise["Quiz"])
}

func TestStatsByFest(t *testing.T) {
	f := setupDashboardService(t)
	f.seed(t)

	stats, err := f.svc.StatsByFest(10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	// Quiz is standalone, so only Robowars counts toward the fest.
	require.Equal(t, models.FestStats{Registrations: 2, Earnings: 500}, stats["Rendezvous"])
}

func TestStatsByDate(t *testing.T) {
	f := setupDashboardService(t)
	f.seed(t)

	stats, err := f.svc.StatsByDate(10)
	require.NoError(t, err)
	require.Equal(t, models.DateStats{Registrations: 2, Earnings: 500}, stats["2026-10-02"])
	require.Equal(t, models.DateStats{Registrations: 1, Earnings: 0}, stats["2026-10-03"])
}

func TestStudentStats(t *testing.T) {
	f := setupDashboardService(t)
	student, err := f.students.Create(&models.Student{UserID: 30, CollegeID: 1, Name: "Asha"})
	require.NoError(t, err)

	pastEvent, err := f.events.Create(&models.Event{
		CollegeID: 1, Name: "Old Quiz", EventDate: "2026-01-10", Fees: 0, Capacity: 50,
	})
	require.NoError(t, err)
	futureEvent, err := f.events.Create(&models.Event{
		CollegeID: 1, Name: "New Hack", EventDate: "2026-12-20", Fees: 300, Capacity: 50,
	})
	require.NoError(t, err)

	_, err = f.registrations.Create(&models.EventRegistration{
		EventID: pastEvent.ID, StudentID: student.ID, PaymentStatus: models.PaymentStatusPaid,
	})
	require.NoError(t, err)
	_, err = f.registrations.Create(&models.EventRegistration{
		EventID: futureEvent.ID, StudentID: student.ID, PaymentStatus: models.PaymentStatusPending,
	})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	stats, err := f.svc.StudentStats(30)
	require.NoError(t, err)
	require.Equal(t, 2, stats.TotalRegistrations)
	require.Equal(t, 1, stats.PaidRegistrations)
	require.Equal(t, 1, stats.PendingPayments)
	require.Equal(t, 1, stats.UpcomingEvents)
}

func TestStudentStats_NoProfile(t *testing.T) {
	f := setupDashboardService(t)

	_, err := f.svc.StudentStats(99)
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundOrForbidden, apperr.KindOf(err))
}
