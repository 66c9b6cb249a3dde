package repository

import (
	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/gorm"
)

type CollegeRepository struct {
	db *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

func (r *CollegeRepository) Create(college *models.College) (*models.College, error) {
	result := r.db.Create(college)
	if result.Error != nil {
		return nil, result.Error
	}
	return college, nil
}

func (r *CollegeRepository) GetByID(id uint) (*models.College, error) {
	var college models.College
	err := r.db.First(&college, id).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// GetByUserID resolves the college profile of an authenticated user.
func (r *CollegeRepository) GetByUserID(userID uint) (*models.College, error) {
	var college models.College
	err := r.db.Where("user_id = ?", userID).First(&college).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

func (r *CollegeRepository) GetAll() ([]models.College, error) {
	var colleges []models.College
	err := r.db.Find(&colleges).Error
	return colleges, err
}
