package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unboundhq/unbound-backend/internal/models"
	"github.com/unboundhq/unbound-backend/pkg/apperr"
)

func setupFestService(t *testing.T) (*FestService, *fakeColleges, *fakeFests) {
	t.Helper()
	colleges := newFakeColleges()
	fests := newFakeFests()
	return NewFestService(fests, colleges), colleges, fests
}

func addCollege(t *testing.T, colleges *fakeColleges, userID uint, name string) *models.College {
	t.Helper()
	college, err := colleges.Create(&models.College{UserID: userID, Name: name})
	require.NoError(t, err)
	return college
}

func TestCreateFest(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	fest, err := svc.CreateFest(1, models.FestRequest{
		Name:      "Rendezvous",
		StartDate: "2026-10-01",
		EndDate:   "2026-10-04",
	})
	require.NoError(t, err)
	require.NotZero(t, fest.ID)
	require.Equal(t, "Rendezvous", fest.Name)
}

func TestCreateFest_SingleDayAllowed(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	_, err := svc.CreateFest(1, models.FestRequest{
		Name:      "Hackday",
		StartDate: "2026-10-01",
		EndDate:   "2026-10-01",
	})
	require.NoError(t, err)
}

func TestCreateFest_StartAfterEnd(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	_, err := svc.CreateFest(1, models.FestRequest{
		Name:      "Backwards",
		StartDate: "2026-10-05",
		EndDate:   "2026-10-01",
	})
	require.Error(t, err)
	require.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestCreateFest_UnparseableDate(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	_, err := svc.CreateFest(1, models.FestRequest{
		Name:      "Broken",
		StartDate: "01/10/2026",
		EndDate:   "2026-10-04",
	})
	require.Error(t, err)
	require.Equal(t, apperr.Internal, apperr.KindOf(err))
}

func TestCreateFest_DuplicateName(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	_, err := svc.CreateFest(1, models.FestRequest{
		Name: "Rendezvous", StartDate: "2026-10-01", EndDate: "2026-10-04",
	})
	require.NoError(t, err)

	// Name comparison ignores case.
	_, err = svc.CreateFest(1, models.FestRequest{
		Name: "rendezvous", StartDate: "2026-11-01", EndDate: "2026-11-02",
	})
	require.Error(t, err)
	require.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestCreateFest_SameNameDifferentCollege(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")
	addCollege(t, colleges, 2, "IIT Bombay")

	req := models.FestRequest{Name: "Rendezvous", StartDate: "2026-10-01", EndDate: "2026-10-04"}
	_, err := svc.CreateFest(1, req)
	require.NoError(t, err)
	_, err = svc.CreateFest(2, req)
	require.NoError(t, err)
}

func TestCreateFest_NoCollegeProfile(t *testing.T) {
	svc, _, _ := setupFestService(t)

	_, err := svc.CreateFest(99, models.FestRequest{
		Name: "Orphan", StartDate: "2026-10-01", EndDate: "2026-10-04",
	})
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundOrForbidden, apperr.KindOf(err))
}

func TestUpdateFest_KeepOwnName(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	fest, err := svc.CreateFest(1, models.FestRequest{
		Name: "Rendezvous", StartDate: "2026-10-01", EndDate: "2026-10-04",
	})
	require.NoError(t, err)

	// Updating a fest to its own name is not a conflict.
	updated, err := svc.UpdateFest(1, fest.ID, models.FestRequest{
		Name: "Rendezvous", StartDate: "2026-10-01", EndDate: "2026-10-05",
	})
	require.NoError(t, err)
	require.Equal(t, "2026-10-05", updated.EndDate)
}

func TestUpdateFest_NotOwned(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")
	addCollege(t, colleges, 2, "IIT Bombay")

	fest, err := svc.CreateFest(1, models.FestRequest{
		Name: "Rendezvous", StartDate: "2026-10-01", EndDate: "2026-10-04",
	})
	require.NoError(t, err)

	// Another college sees the fest as missing, not as forbidden.
	_, err = svc.UpdateFest(2, fest.ID, models.FestRequest{
		Name: "Hijack", StartDate: "2026-10-01", EndDate: "2026-10-04",
	})
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundOrForbidden, apperr.KindOf(err))
	require.Contains(t, err.Error(), "not found or not owned")
}

func TestDeleteFest(t *testing.T) {
	svc, colleges, fests := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	fest, err := svc.CreateFest(1, models.FestRequest{
		Name: "Rendezvous", StartDate: "2026-10-01", EndDate: "2026-10-04",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFest(1, fest.ID))
	_, err = fests.GetByID(fest.ID)
	require.Error(t, err)
}

func TestDeleteFest_Unknown(t *testing.T) {
	svc, colleges, _ := setupFestService(t)
	addCollege(t, colleges, 1, "IIT Delhi")

	err := svc.DeleteFest(1, 404)
	require.Error(t, err)
	require.Equal(t, apperr.NotFoundOrForbidden, apperr.KindOf(err))
}
