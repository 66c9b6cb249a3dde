package service

import (
	"errors"

	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/gorm"
)

// Store interfaces cover the slice of internal/repository each workflow
// needs. Tests substitute in-memory fakes.

type UserStore interface {
	Create(user *models.User) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

type CollegeStore interface {
	Create(college *models.College) (*models.College, error)
	GetByID(id uint) (*models.College, error)
	GetByUserID(userID uint) (*models.College, error)
	GetAll() ([]models.College, error)
}

type StudentStore interface {
	Create(student *models.Student) (*models.Student, error)
	GetByID(id uint) (*models.Student, error)
	GetByUserID(userID uint) (*models.Student, error)
}

type FestStore interface {
	Create(fest *models.Fest) (*models.Fest, error)
	GetByID(id uint) (*models.Fest, error)
	Update(fest *models.Fest) error
	Delete(id uint) error
	GetByCollege(collegeID uint) ([]models.Fest, error)
	GetAll() ([]models.Fest, error)
}

type EventStore interface {
	Create(event *models.Event) (*models.Event, error)
	GetByID(id uint) (*models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
	GetByCollege(collegeID uint) ([]models.Event, error)
	GetByFest(festID uint) ([]models.Event, error)
	GetAll() ([]models.Event, error)
}

type TeamStore interface {
	Create(team *models.Team) (*models.Team, error)
	GetByID(id uint) (*models.Team, error)
	AddMember(member *models.TeamMember) error
	IsMember(teamID, studentID uint) (bool, error)
}

type RegistrationStore interface {
	Create(reg *models.EventRegistration) (*models.EventRegistration, error)
	Update(reg *models.EventRegistration) error
	GetByID(id uint) (*models.EventRegistration, error)
	GetByEventAndStudent(eventID, studentID uint) (*models.EventRegistration, error)
	CountByEvent(eventID uint) (int64, error)
	GetByEvent(eventID uint) ([]models.EventRegistration, error)
	GetByStudent(studentID uint) ([]models.EventRegistration, error)
}

type PaymentStore interface {
	Create(payment *models.Payment) (*models.Payment, error)
	Update(payment *models.Payment) error
	GetByOrderID(orderID string) (*models.Payment, error)
	GetPaidByEvent(eventID uint) ([]models.Payment, error)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
