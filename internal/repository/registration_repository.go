package repository

import (
	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(reg *models.EventRegistration) (*models.EventRegistration, error) {
	result := r.db.Create(reg)
	if result.Error != nil {
		return nil, result.Error
	}
	return reg, nil
}

func (r *RegistrationRepository) Update(reg *models.EventRegistration) error {
	return r.db.Save(reg).Error
}

func (r *RegistrationRepository) GetByID(id uint) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := r.db.First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) GetByEventAndStudent(eventID, studentID uint) (*models.EventRegistration, error) {
	var reg models.EventRegistration
	err := r.db.Where("event_id = ? AND student_id = ?", eventID, studentID).First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) CountByEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventRegistration{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *RegistrationRepository) GetByEvent(eventID uint) ([]models.EventRegistration, error) {
	var regs []models.EventRegistration
	err := r.db.Where("event_id = ?", eventID).Find(&regs).Error
	return regs, err
}

func (r *RegistrationRepository) GetByStudent(studentID uint) ([]models.EventRegistration, error) {
	var regs []models.EventRegistration
	err := r.db.Where("student_id = ?", studentID).Find(&regs).Error
	return regs, err
}
