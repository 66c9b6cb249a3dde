package repository

import (
	"github.com/unboundhq/unbound-backend/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(team *models.Team) (*models.Team, error) {
	result := r.db.Create(team)
	if result.Error != nil {
		return nil, result.Error
	}
	return team, nil
}

func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) AddMember(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *TeamRepository) IsMember(teamID, studentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND student_id = ?", teamID, studentID).
		Count(&count).Error
	return count > 0, err
}

func (r *TeamRepository) GetMembers(teamID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("team_id = ?", teamID).Find(&members).Error
	return members, err
}
