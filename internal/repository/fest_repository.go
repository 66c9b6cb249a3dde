package repository

import (
	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/gorm"
)

type FestRepository struct {
	db *gorm.DB
}

func NewFestRepository(db *gorm.DB) *FestRepository {
	return &FestRepository{db: db}
}

func (r *FestRepository) Create(fest *models.Fest) (*models.Fest, error) {
	result := r.db.Create(fest)
	if result.Error != nil {
		return nil, result.Error
	}
	return fest, nil
}

func (r *FestRepository) GetByID(id uint) (*models.Fest, error) {
	var fest models.Fest
	err := r.db.First(&fest, id).Error
	if err != nil {
		return nil, err
	}
	return &fest, nil
}

func (r *FestRepository) Update(fest *models.Fest) error {
	return r.db.Save(fest).Error
}

func (r *FestRepository) Delete(id uint) error {
	return r.db.Delete(&models.Fest{}, id).Error
}

func (r *FestRepository) GetByCollege(collegeID uint) ([]models.Fest, error) {
	var fests []models.Fest
	err := r.db.Where("college_id = ?", collegeID).Find(&fests).Error
	return fests, err
}

func (r *FestRepository) GetAll() ([]models.Fest, error) {
	var fests []models.Fest
	err := r.db.Find(&fests).Error
	return fests, err
}
