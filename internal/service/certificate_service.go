package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
	"github.com/unboundhq/unbound-backend/pkg/certificate"
)

type CertificateService struct {
	registrations RegistrationStore
	events        EventStore
	students      StudentStore
	fests         FestStore
	colleges      CollegeStore
	renderer      certificate.Renderer

	// now is swappable for tests.
	now func() time.Time
}

func NewCertificateService(
	registrations RegistrationStore,
	events EventStore,
	students StudentStore,
	fests FestStore,
	colleges CollegeStore,
	renderer certificate.Renderer,
) *CertificateService {
	return &CertificateService{
		registrations: registrations,
		events:        events,
		students:      students,
		fests:         fests,
		colleges:      colleges,
		renderer:      renderer,
		now:           time.Now,
	}
}

// Download gates certificate access: the student must hold a registration
// that is paid (unless the event is free) and approved, and the event
// must be over. Each failed gate reports its own reason.
func (s *CertificateService) Download(studentUserID, eventID uint) ([]byte, error) {
	student, err := s.students.GetByUserID(studentUserID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFoundOrForbidden, "student profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up student")
	}

	event, err := s.events.GetByID(eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.NotFoundOrForbidden, "event %d not found", eventID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up event")
	}

	reg, err := s.registrations.GetByEventAndStudent(event.ID, student.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.Forbidden, "you must be a registered participant to download a certificate")
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up registration")
	}

	if event.Fees > 0 && !strings.EqualFold(reg.PaymentStatus, models.PaymentStatusPaid) {
		return nil, apperr.New(apperr.Forbidden, "you must be a paid participant to download a certificate")
	}
	if !reg.CertificateApproved {
		return nil, apperr.New(apperr.Forbidden, "certificate not yet approved by college")
	}

	eventDate, err := time.Parse(dateLayout, event.EventDate)
	if err != nil {
		return nil, apperr.Newf(apperr.Internal, "invalid event date for event %d", eventID)
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !today.After(eventDate) {
		return nil, apperr.New(apperr.Forbidden, "certificate available only after event completion")
	}

	festName := ""
	if event.FestID != nil {
		if fest, err := s.fests.GetByID(*event.FestID); err == nil {
			festName = fest.Name
		}
	}

	pdf, err := s.renderer.Render(student.Name, event.Name, festName, event.EventDate)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, fmt.Sprintf("failed to generate certificate for event %d", eventID))
	}
	return pdf, nil
}

// ApproveAll marks every registration of an owned event as certificate
// approved.
func (s *CertificateService) ApproveAll(collegeUserID, eventID uint) (int, error) {
	event, err := s.ownedEvent(collegeUserID, eventID)
	if err != nil {
		return 0, err
	}

	regs, err := s.registrations.GetByEvent(event.ID)
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, err, "failed to list registrations")
	}

	approved := 0
	for i := range regs {
		regs[i].CertificateApproved = true
		if err := s.registrations.Update(&regs[i]); err != nil {
			return approved, apperr.Wrap(apperr.Internal, err, "failed to approve certificate")
		}
		approved++
	}
	return approved, nil
}

// ApproveList approves the given registration ids; ids that do not belong
// to the event are skipped.
func (s *CertificateService) ApproveList(collegeUserID, eventID uint, registrationIDs []uint) (int, error) {
	event, err := s.ownedEvent(collegeUserID, eventID)
	if err != nil {
		return 0, err
	}

	approved := 0
	for _, regID := range registrationIDs {
		reg, err := s.registrations.GetByID(regID)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return approved, apperr.Wrap(apperr.Internal, err, "failed to look up registration")
		}
		if reg.EventID != event.ID {
			continue
		}
		reg.CertificateApproved = true
		if err := s.registrations.Update(reg); err != nil {
			return approved, apperr.Wrap(apperr.Internal, err, "failed to approve certificate")
		}
		approved++
	}
	return approved, nil
}

func (s *CertificateService) ownedEvent(collegeUserID, eventID uint) (*models.Event, error) {
	college, err := collegeForUser(s.colleges, collegeUserID)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.NotFoundOrForbidden, "event %d not found or not owned by this college", eventID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up event")
	}
	if event.CollegeID != college.ID {
		return nil, apperr.Newf(apperr.NotFoundOrForbidden, "event %d not found or not owned by this college", eventID)
	}
	return event, nil
}
