package usecase

import (
	"fmt"
	"strings"
	"testing"

	authdomain "caresync/internal/auth/domain"
	therapistdomain "caresync/internal/therapist/domain"
	therapistdto "caresync/internal/therapist/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeTherapistRepo struct {
	profiles []*therapistdomain.TherapistProfile
}

func (f *fakeTherapistRepo) List(filter *therapistdto.ListFilter) ([]*therapistdomain.TherapistProfile, int64, error) {
	var matched []*therapistdomain.TherapistProfile
	for _, p := range f.profiles {
		if filter.Specialization != "" &&
			!strings.Contains(strings.ToLower(p.Specialization), strings.ToLower(filter.Specialization)) {
			continue
		}
		if filter.Verified != nil && p.Verified != *filter.Verified {
			continue
		}
		if filter.MinRating > 0 && p.Rating < filter.MinRating {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.PerPage
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeTherapistRepo) FindByID(id string) (*therapistdomain.TherapistProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeTherapistRepo) FindByUserID(userID string) (*therapistdomain.TherapistProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeTherapistRepo) Create(profile *therapistdomain.TherapistProfile) error {
	profile.ID = uuid.New().String()
	f.profiles = append(f.profiles, profile)
	return nil
}

func (f *fakeTherapistRepo) Update(profile *therapistdomain.TherapistProfile) error {
	for i, p := range f.profiles {
		if p.ID == profile.ID {
			f.profiles[i] = profile
			return nil
		}
	}
	return nil
}

type fakeUserRepo struct {
	updated []*authdomain.User
}

func (f *fakeUserRepo) Create(*authdomain.User) error                { return nil }
func (f *fakeUserRepo) FindByEmail(string) (*authdomain.User, error) { return nil, nil }
func (f *fakeUserRepo) FindByID(string) (*authdomain.User, error)    { return nil, nil }
func (f *fakeUserRepo) Update(user *authdomain.User) error {
	f.updated = append(f.updated, user)
	return nil
}

func seededUsecase(n int) (TherapistUsecase, *fakeTherapistRepo, *fakeUserRepo) {
	repo := &fakeTherapistRepo{}
	for i := 0; i < n; i++ {
		repo.profiles = append(repo.profiles, &therapistdomain.TherapistProfile{
			ID:             fmt.Sprintf("p-%d", i),
			UserID:         fmt.Sprintf("u-%d", i),
			Specialization: "anxiety",
			Verified:       i%2 == 0,
			Rating:         float64(i % 5),
		})
	}
	userRepo := &fakeUserRepo{}
	return NewTherapistUsecase(repo, userRepo, zap.NewNop()), repo, userRepo
}

// ---- tests ----

func TestList_PaginationMetadata(t *testing.T) {
	uc, _, _ := seededUsecase(25)

	resp, err := uc.List(&therapistdto.ListFilter{Page: 2, PerPage: 10})
	require.NoError(t, err)

	assert.Len(t, resp.Therapists, 10)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, int64(25), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.Pages)
	assert.True(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestList_DefaultsAndCaps(t *testing.T) {
	uc, _, _ := seededUsecase(60)

	resp, err := uc.List(&therapistdto.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, therapistdto.DefaultPerPage, resp.Pagination.PerPage)

	resp, err = uc.List(&therapistdto.ListFilter{PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, therapistdto.MaxPerPage, resp.Pagination.PerPage)
	assert.Len(t, resp.Therapists, therapistdto.MaxPerPage)
}

func TestList_Filters(t *testing.T) {
	uc, _, _ := seededUsecase(10)

	verified := true
	resp, err := uc.List(&therapistdto.ListFilter{Verified: &verified})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Pagination.Total)

	resp, err = uc.List(&therapistdto.ListFilter{MinRating: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Pagination.Total)

	resp, err = uc.List(&therapistdto.ListFilter{Specialization: "nonexistent"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Pagination.Total)
	assert.False(t, resp.Pagination.HasNext)
}

func TestGetByID(t *testing.T) {
	uc, _, _ := seededUsecase(3)

	profile, err := uc.GetByID("p-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", profile.ID)

	_, err = uc.GetByID("missing")
	assert.ErrorIs(t, err, ErrTherapistNotFound)
}

func TestUpsertOwnProfile_CreateThenUpdate(t *testing.T) {
	uc, repo, userRepo := seededUsecase(0)
	user := &authdomain.User{ID: "u-new", Role: authdomain.RoleTherapist}

	req := &therapistdto.UpsertProfileRequest{
		FirstName:       "Dana",
		LastName:        "Levi",
		LicenseNumber:   "LIC-100",
		Specialization:  "trauma",
		ExperienceYears: 7,
		Languages:       therapistdomain.StringList{"he", "en"},
		HourlyRate:      350,
	}

	profile, err := uc.UpsertOwnProfile(user, req)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "u-new", profile.UserID)
	assert.True(t, user.ProfileCompleted)
	require.Len(t, userRepo.updated, 1)

	req.Bio = "Updated bio"
	again, err := uc.UpsertOwnProfile(user, req)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
	assert.Equal(t, "Updated bio", again.Bio)
	// Completed flag is only written once
	assert.Len(t, userRepo.updated, 1)
	assert.Len(t, repo.profiles, 1)
}
