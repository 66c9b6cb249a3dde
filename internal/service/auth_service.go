package service

import (
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
	"github.com/unboundhq/unbound-backend/pkg/bcrypt"
	jwtPkg "github.com/unboundhq/unbound-backend/pkg/jwt"
)

type AuthService struct {
	users    UserStore
	students StudentStore
	colleges CollegeStore
}

func NewAuthService(users UserStore, students StudentStore, colleges CollegeStore) *AuthService {
	return &AuthService{
		users:    users,
		students: students,
		colleges: colleges,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to check email")
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	}

	// The student's college is resolved before the user row is written
	// so a failed validation cannot leave a profile-less user behind
	// that blocks the email forever.
	var college *models.College
	if req.Role == models.RoleStudent {
		if req.CollegeID == nil {
			return nil, apperr.New(apperr.Validation, "college_id is required for student registration")
		}
		college, err = s.colleges.GetByID(*req.CollegeID)
		if err != nil {
			if isNotFound(err) {
				return nil, apperr.Newf(apperr.Validation, "college %d not found", *req.CollegeID)
			}
			return nil, apperr.Wrap(apperr.Internal, err, "failed to look up college")
		}
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to hash password")
	}

	user, err := s.users.Create(&models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to create user")
	}

	resp := &models.AuthResponse{
		Role:  user.Role,
		Email: user.Email,
	}

	switch req.Role {
	case models.RoleStudent:
		if _, err := s.students.Create(&models.Student{
			UserID:    user.ID,
			CollegeID: college.ID,
			Name:      req.StudentName,
		}); err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to create student profile")
		}
		resp.StudentName = req.StudentName

	case models.RoleCollege:
		if _, err := s.colleges.Create(&models.College{
			UserID:       user.ID,
			Name:         req.CollegeName,
			Description:  req.Description,
			Address:      req.Address,
			ContactEmail: req.ContactEmail,
		}); err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "failed to create college profile")
		}
		resp.CollegeName = req.CollegeName
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to issue token")
	}
	resp.Token = token

	return resp, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.New(apperr.Forbidden, "invalid credentials")
		}
		return nil, apperr.Wrap(apperr.Internal, err, "failed to look up user")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, apperr.New(apperr.Forbidden, "invalid credentials")
	}

	resp := &models.AuthResponse{
		Role:  user.Role,
		Email: user.Email,
	}

	switch user.Role {
	case models.RoleStudent:
		if student, err := s.students.GetByUserID(user.ID); err == nil {
			resp.StudentName = student.Name
		}
	case models.RoleCollege:
		if college, err := s.colleges.GetByUserID(user.ID); err == nil {
			resp.CollegeName = college.Name
		}
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "failed to issue token")
	}
	resp.Token = token

	return resp, nil
}
