package service

import (
	"fmt"
	"sync"

	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
	"github.com/unboundhq/unbound-backend/pkg/email"
	"github.com/unboundhq/unbound-backend/pkg/qrcode"
	"go.uber.org/zap"
)

// TeamRef selects an existing team to join or describes a new one.
type TeamRef struct {
	TeamID    *uint
	TeamName  string
	MemberIDs []uint
}

type RegistrationService struct {
	events        EventStore
	students      StudentStore
	users         UserStore
	fests         FestStore
	registrations RegistrationStore
	teams         TeamStore
	notifier      email.Notifier
	qr            *qrcode.QRService
	logger        *zap.Logger

	// eventLocks serializes the duplicate/capacity check against the
	// create for the same event.
	mu         sync.Mutex
	eventLocks map[uint]*sync.Mutex
}

func NewRegistrationService(
	events EventStore,
	students StudentStore,
	users UserStore,
	fests FestStore,
	registrations RegistrationStore,
	teams TeamStore,
	notifier email.Notifier,
	qr *qrcode.QRService,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		events:        events,
		students:      students,
		users:         users,
		fests:         fests,
		registrations: registrations,
		teams:         teams,
		notifier:      notifier,
		qr:            qr,
		logger:        logger,
		eventLocks:    make(map[uint]*sync.Mutex),
	}
}

func (s *RegistrationService) lockEvent(eventID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.eventLocks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		s.eventLocks[eventID] = lock
	}
	return lock
}

// RegisterSolo enrolls the student directly. Zero-fee events are marked
// paid immediately; others start pending.
func (s *RegistrationService) RegisterSolo(studentUserID, eventID uint) (*models.EventRegistration, error) {
	student, err := s.studentForUser(studentUserID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventByID(eventID)
	if err != nil {
		return nil, err
	}

	if event.TeamAllowed {
		return nil, apperr.New(apperr.Validation, "this event requires team registration")
	}

	lock := s.lockEvent(event.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.checkDuplicateAndCapacity(event, student.ID); err != nil {
		return nil, err
	}

	paymentStatus := models.PaymentStatusPending
	if event.Fees == 0 {
		paymentStatus = models.PaymentStatusPaid
	}

	reg, err := s.registrations.Create(&models.EventRegistration{
		EventID:       event.ID,
		StudentID:     student.ID,
		Status:        models.RegistrationStatusRegistered,
		PaymentStatus: paymentStatus,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to create registration")
	}

	s.sendConfirmation(student, event, false)
	return reg, nil
}

// RegisterTeam joins or creates a team and registers the acting student.
// Team members added here are not themselves registered for the event.
func (s *RegistrationService) RegisterTeam(studentUserID, eventID uint, ref TeamRef) (*models.EventRegistration, error) {
	student, err := s.studentForUser(studentUserID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventByID(eventID)
	if err != nil {
		return nil, err
	}

	if !event.TeamAllowed {
		return nil, apperr.New(apperr.Validation, "this event does not allow team registration")
	}

	lock := s.lockEvent(event.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.checkDuplicateAndCapacity(event, student.ID); err != nil {
		return nil, err
	}

	var team *models.Team
	switch {
	case ref.TeamID != nil:
		team, err = s.teams.GetByID(*ref.TeamID)
		if err != nil {
			if isNotFound(err) {
				return nil, apperr.Newf(apperr.Validation, "team %d not found", *ref.TeamID)
			}
			return nil, apperr.Wrap(apperr.Internal, err, "failed to look up team")
		}
		member, err := s.teams.IsMember(team.ID, student.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to check team membership")
		}
		if member {
			return nil, apperr.New(apperr.Conflict, "already a member of this team")
		}
		if err := s.teams.AddMember(&models.TeamMember{TeamID: team.ID, StudentID: student.ID}); err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to join team")
		}

	case ref.TeamName != "" && len(ref.MemberIDs) > 0:
		team, err = s.teams.Create(&models.Team{
			EventID:   event.ID,
			Name:      ref.TeamName,
			CreatorID: student.ID,
		})
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to create team")
		}
		// Member ids are a set; unknown ids are skipped rather than
		// failing the whole registration.
		seen := make(map[uint]bool)
		for _, memberID := range ref.MemberIDs {
			if seen[memberID] {
				continue
			}
			seen[memberID] = true
			if _, err := s.students.GetByID(memberID); err != nil {
				if isNotFound(err) {
					continue
				}
				return nil, apperr.Wrap(apperr.Internal, err, "failed to look up team member")
			}
			if err := s.teams.AddMember(&models.TeamMember{TeamID: team.ID, StudentID: memberID}); err != nil {
				return nil, apperr.Wrap(apperr.Internal, err, "failed to add team member")
			}
		}

	default:
		return nil, apperr.New(apperr.Validation, "invalid team registration request")
	}

	paymentStatus := models.PaymentStatusPending
	if event.Fees == 0 {
		paymentStatus = models.PaymentStatusPaid
	}

	reg, err := s.registrations.Create(&models.EventRegistration{
		EventID:       event.ID,
		StudentID:     student.ID,
		TeamID:        &team.ID,
		Status:        models.RegistrationStatusRegistered,
		PaymentStatus: paymentStatus,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to create registration")
	}

	s.sendConfirmation(student, event, true)
	return reg, nil
}

func (s *RegistrationService) MyRegistrations(studentUserID uint) ([]models.RegistrationSummary, error) {
	student, err := s.studentForUser(studentUserID)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrations.GetByStudent(student.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list registrations")
	}

	summaries := make([]models.RegistrationSummary, 0, len(regs))
	for _, reg := range regs {
		summary := models.RegistrationSummary{
			RegistrationID:      reg.ID,
			EventID:             reg.EventID,
			Status:              reg.Status,
			PaymentStatus:       reg.PaymentStatus,
			CertificateApproved: reg.CertificateApproved,
		}
		if event, err := s.events.GetByID(reg.EventID); err == nil {
			summary.EventName = event.Name
			summary.EventDate = event.EventDate
			if event.FestID != nil {
				if fest, err := s.fests.GetByID(*event.FestID); err == nil {
					summary.FestName = fest.Name
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// TicketPNG renders the check-in QR for one's own registration.
func (s *RegistrationService) TicketPNG(studentUserID, registrationID uint, size int) ([]byte, error) {
	student, err := s.studentForUser(studentUserID)
	if err != nil {
		return nil, err
	}

	reg, err := s.registrations.GetByID(registrationID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.NotFoundOrForbidden, "registration %d not found", registrationID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up registration")
	}
	if reg.StudentID != student.ID {
		return nil, apperr.Newf(apperr.NotFoundOrForbidden, "registration %d not found", registrationID)
	}

	png, err := s.qr.GenerateTicket(fmt.Sprintf("reg-%d", reg.ID), size)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to render ticket")
	}
	return png, nil
}

// Duplicate and capacity are checked before any side effect. The
// capacity check reads the live registration count.
func (s *RegistrationService) checkDuplicateAndCapacity(event *models.Event, studentID uint) error {
	_, err := s.registrations.GetByEventAndStudent(event.ID, studentID)
	if err == nil {
		return apperr.New(apperr.Conflict, "already registered for this event")
	}
	if !isNotFound(err) {
		return apperr.Wrap(apperr.Internal, err, "failed to check registration")
	}

	count, err := s.registrations.CountByEvent(event.ID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to count registrations")
	}
	if count >= int64(event.Capacity) {
		return apperr.Newf(apperr.CapacityExceeded, "event %d is full", event.ID)
	}
	return nil
}

func (s *RegistrationService) sendConfirmation(student *models.Student, event *models.Event, asTeam bool) {
	user, err := s.users.GetByID(student.UserID)
	if err != nil {
		s.logger.Warn("cannot resolve student email for confirmation",
			zap.Uint("student_id", student.ID), zap.Error(err))
		return
	}

	how := ""
	if asTeam {
		how = " as part of a team"
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nYou have successfully registered for event '%s'%s.\nEvent Date: %s\nLocation: %s\n\nThank you for registering!\n\n- Unbound Platform Team",
		student.Name, event.Name, how, event.EventDate, event.Location,
	)

	if err := s.notifier.Send(user.Email, "Registration Confirmation - "+event.Name, body); err != nil {
		s.logger.Warn("confirmation email failed",
			zap.Uint("registration_event", event.ID), zap.Error(err))
	}
}

func (s *RegistrationService) studentForUser(userID uint) (*models.Student, error) {
	student, err := s.students.GetByUserID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFoundOrForbidden, "student profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up student")
	}
	return student, nil
}

func (s *RegistrationService) eventByID(eventID uint) (*models.Event, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.NotFoundOrForbidden, "event %d not found", eventID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up event")
	}
	return event, nil
}
