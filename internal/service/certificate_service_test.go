package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
)

type certificateFixture struct {
	svc           *CertificateService
	colleges      *fakeColleges
	students      *fakeStudents
	fests         *fakeFests
	events        *fakeEvents
	registrations *fakeRegistrations
	renderer      *fakeRenderer
}

func setupCertificateService(t *testing.T) *certificateFixture {
	t.Helper()
	f := &certificateFixture{
		colleges:      newFakeColleges(),
		students:      newFakeStudents(),
		fests:         newFakeFests(),
		events:        newFakeEvents(),
		registrations: newFakeRegistrations(),
		renderer:      &fakeRenderer{},
	}
	f.svc = NewCertificateService(f.registrations, f.events, f.students, f.fests, f.colleges, f.renderer)
	// The event below is dated 2026-10-02; "today" is well past it.
	f.svc.now = func() time.Time { return time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC) }
	return f
}

// seed creates a paid, approved registration for a past event and
// returns the pieces tests mutate to break individual gates.
func (f *certificateFixture) seed(t *testing.T) (*models.Event, *models.EventRegistration) {
	t.Helper()
	student, err := f.students.Create(&models.Student{UserID: 1, CollegeID: 1, Name: "Asha"})
	require.NoError(t, err)
	event, err := f.events.Create(&models.Event{
		CollegeID: 1, Name: "Robowars", EventDate: "2026-10-02", Fees: 500, Capacity: 50,
	})
	require.NoError(t, err)
	reg, err := f.registrations.Create(&models.EventRegistration{
		EventID:             event.ID,
		StudentID:           student.ID,
		Status:              models.RegistrationStatusRegistered,
		PaymentStatus:       models.PaymentStatusPaid,
		CertificateApproved: true,
	})
	require.NoError(t, err)
	return event, reg
}

func TestCertificateDownload(t *testing.T) {
	f := setupCertificateService(t)
	event, _ := f.seed(t)

	pdf, err := f.svc.Download(1, event.ID)
	require.NoError(t, err)
	require.Contains(t, string(pdf), "Asha")
	require.Contains(t, string(pdf), "Robowars")
}

func TestCertificateDownload_NotRegistered(t *testing.T) {
	f := setupCertificateService(t)
	event, reg := f.seed(t)
	require.NoError(t, f.registrations.Delete(reg.ID))

	_, err := f.svc.Download(1, event.ID)
	require.Error(t, err)
	require.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	require.Contains(t, err.Error(), "registered participant")
}

func TestCertificateDownload_UnpaidOnPaidEvent(t *testing.T) {
	f := setupCertificateService(t)
	event, reg := f.seed(t)
	reg.PaymentStatus = models.PaymentStatusPending
	require.NoError(t, f.registrations.Update(reg))

	_, err := f.svc.Download(1, event.ID)
	require.Error(t, err)
	require.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	require.Contains(t, err.Error(), "paid participant")
}

func TestCertificateDownload_UnpaidOnFreeEvent(t *testing.T) {
	f := setupCertificateService(t)
	event, reg := f.seed(t)
	event.Fees = 0
	require.NoError(t, f.events.Update(event))
	reg.PaymentStatus = models.PaymentStatusPending
	require.NoError(t, f.registrations.Update(reg))

	// Free events skip the payment gate.
	_, err := f.svc.Download(1, event.ID)
	require.NoError(t, err)
}

func TestCertificateDownload_NotApproved(t *testing.T) {
	f := setupCertificateService(t)
	event, reg := f.seed(t)
	reg.CertificateApproved = false
	require.NoError(t, f.registrations.Update(reg))

	_, err := f.svc.Download(1, event.ID)
	require.Error(t, err)
	require.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	require.Contains(t, err.Error(), "not yet approved")
}

func TestCertificateDownload_EventNotOver(t *testing.T) {
	f := setupCertificateService(t)
	event, _ := f.seed(t)
	f.svc.now = func() time.Time { return time.Date(2026, 10, 2, 23, 0, 0, 0, time.UTC) }

	// On the event day itself the certificate is still locked.
	_, err := f.svc.Download(1, event.ID)
	require.Error(t, err)
	require.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	require.Contains(t, err.Error(), "after event completion")
}

func TestCertificateDownload_DayAfterEvent(t *testing.T) {
	f := setupCertificateService(t)
	event, _ := f.seed(t)
	f.svc.now = func() time.Time { return time.Date(2026, 10, 3, 0, 30, 0, 0, time.UTC) }

	_, err := f.svc.Download(1, event.ID)
	require.NoError(t, err)
}

func TestCertificateDownload_BadEventDate(t *testing.T) {
	f := setupCertificateService(t)
	event, _ := f.seed(t)
	event.EventDate = "02-10-2026"
	require.NoError(t, f.events.Update(event))

	_, err := f.svc.Download(1, event.ID)
	require.Error(t, err)
	require.Equal(t, apperr.Internal, apperr.KindOf(err))
}

func TestApproveAll(t *testing.T) {
	f := setupCertificateService(t)
	_, err := f.colleges.Create(&models.College{UserID: 10, Name: "IIT Delhi"})
	require.NoError(t, err)
	event, reg := f.seed(t)
	reg.CertificateApproved = false
	require.NoError(t, f.registrations.Update(reg))

	count, err := f.svc.ApproveAll(10, event.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	got, err := f.registrations.GetByID(reg.ID)
	require.NoError(t, err)
	require.True(t, got.CertificateApproved)
}

func TestApproveAll_NotOwnedEvent(t *testing.T) {
	f := setupCertificateService(t)
	_, err := f.colleges.Create(&models.College{UserID: 10, Name: "IIT Delhi"})
	require.NoError(t, err)
	_, err = f.colleges.Create(&models.College{UserID: 20, Name: "IIT Bombay"})
	require.NoError(t, err)
	event, _ := f.seed(t)

	_, err = f.svc.ApproveAll(20, event.ID)
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundOrForbidden, apperr.KindOf(err))
}

func TestApproveList_SkipsForeignRegistrations(t *testing.T) {
	f := setupCertificateService(t)
	_, err := f.colleges.Create(&models.College{UserID: 10, Name: "IIT Delhi"})
	require.NoError(t, err)
	event, reg := f.seed(t)
	reg.CertificateApproved = false
	require.NoError(t, f.registrations.Update(reg))

	otherEvent, err := f.events.Create(&models.Event{CollegeID: 1, Name: "Quiz", EventDate: "2026-10-02", Capacity: 50})
	require.NoError(t, err)
	foreign, err := f.registrations.Create(&models.EventRegistration{EventID: otherEvent.ID, StudentID: 1})
	require.NoError(t, err)

	count, err := f.svc.ApproveList(10, event.ID, []uint{reg.ID, foreign.ID, 999})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	got, err := f.registrations.GetByID(foreign.ID)
	require.NoError(t, err)
	require.False(t, got.CertificateApproved, "registration of another event is untouched")
}
