package service

import (
	"strings"
	"time"

	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
)

const dateLayout = "2006-01-02"

type FestService struct {
	fests    FestStore
	colleges CollegeStore
}

func NewFestService(fests FestStore, colleges CollegeStore) *FestService {
	return &FestService{
		fests:    fests,
		colleges: colleges,
	}
}

// collegeForUser resolves the college profile of the authenticated caller.
func collegeForUser(colleges CollegeStore, userID uint) (*models.College, error) {
	college, err := colleges.GetByUserID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.NotFoundOrForbidden, "college profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up college")
	}
	return college, nil
}

func (s *FestService) ListFests(userID uint) ([]models.Fest, error) {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return nil, err
	}
	fests, err := s.fests.GetByCollege(college.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to list fests")
	}
	return fests, nil
}

func (s *FestService) CreateFest(userID uint, req models.FestRequest) (*models.Fest, error) {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameUnique(college.ID, req.Name, 0); err != nil {
		return nil, err
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	fest, err := s.fests.Create(&models.Fest{
		CollegeID:   college.ID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to create fest")
	}
	return fest, nil
}

func (s *FestService) UpdateFest(userID, festID uint, req models.FestRequest) (*models.Fest, error) {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return nil, err
	}

	fest, err := s.ownedFest(college.ID, festID)
	if err != nil {
		return nil, err
	}

	if err := s.checkNameUnique(college.ID, req.Name, festID); err != nil {
		return nil, err
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	fest.Name = req.Name
	fest.Description = req.Description
	fest.StartDate = req.StartDate
	fest.EndDate = req.EndDate

	if err := s.fests.Update(fest); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to update fest")
	}
	return fest, nil
}

func (s *FestService) DeleteFest(userID, festID uint) error {
	college, err := collegeForUser(s.colleges, userID)
	if err != nil {
		return err
	}

	if _, err := s.ownedFest(college.ID, festID); err != nil {
		return err
	}

	if err := s.fests.Delete(festID); err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to delete fest")
	}
	return nil
}

// ownedFest reports missing and not-owned fests identically so callers
// cannot probe other colleges' ids.
func (s *FestService) ownedFest(collegeID, festID uint) (*models.Fest, error) {
	fest, err := s.fests.GetByID(festID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.Newf(apperr.NotFoundOrForbidden, "fest %d not found or not owned by this college", festID)
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up fest")
	}
	if fest.CollegeID != collegeID {
		return nil, apperr.Newf(apperr.NotFoundOrForbidden, "fest %d not found or not owned by this college", festID)
	}
	return fest, nil
}

func (s *FestService) checkNameUnique(collegeID uint, name string, excludeID uint) error {
	fests, err := s.fests.GetByCollege(collegeID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, err, "failed to list fests")
	}
	for _, f := range fests {
		if f.ID != excludeID && strings.EqualFold(f.Name, name) {
			return apperr.Newf(apperr.Conflict, "fest name %q already exists for this college", name)
		}
	}
	return nil
}

// validateDateRange accepts start == end; an unparseable date is fatal,
// not a soft validation failure.
func validateDateRange(start, end string) error {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return apperr.Newf(apperr.Internal, "invalid date format for start date %q", start)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return apperr.Newf(apperr.Internal, "invalid date format for end date %q", end)
	}
	if s.After(e) {
		return apperr.New(apperr.Validation, "start date must be on or before end date")
	}
	return nil
}
