package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	authdomain "caresync/internal/auth/domain"
	authdto "caresync/internal/auth/dto"
	"caresync/internal/auth/repository"
	"caresync/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*authdomain.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*authdomain.User{}}
}

func (f *fakeUserRepo) Create(user *authdomain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Update(user *authdomain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.UpdatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

type fakeRevocationRepo struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newFakeRevocationRepo() *fakeRevocationRepo {
	return &fakeRevocationRepo{revoked: map[string]bool{}}
}

func (f *fakeRevocationRepo) Revoke(_ context.Context, jti string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = true
	return nil
}

func (f *fakeRevocationRepo) IsRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[jti], nil
}

func newTestUsecase() (AuthUsecase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, newFakeRevocationRepo(), &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}, zap.NewNop())
	return uc, repo
}

func registerPatient(t *testing.T, uc AuthUsecase, email string) *authdomain.User {
	t.Helper()
	user, err := uc.Register(&authdto.RegisterRequest{
		Email:    email,
		Password: "password1",
		Role:     "patient",
	})
	require.NoError(t, err)
	return user
}

// ---- tests ----

func TestRegister_Defaults(t *testing.T) {
	uc, _ := newTestUsecase()

	user := registerPatient(t, uc, "new@example.com")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, authdomain.RolePatient, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, "he", user.LanguagePreference)
	assert.False(t, user.ProfileCompleted)
	assert.True(t, repository.CheckPasswordHash("password1", user.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUsecase()
	registerPatient(t, uc, "dup@example.com")

	_, err := uc.Register(&authdto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "password2",
		Role:     "therapist",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	uc, _ := newTestUsecase()
	registered := registerPatient(t, uc, "login@example.com")

	resp, err := uc.Login(&authdto.LoginRequest{Email: "login@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, registered.ID, resp.User.ID)

	user, err := uc.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	uc, _ := newTestUsecase()
	registerPatient(t, uc, "someone@example.com")

	_, errUnknown := uc.Login(&authdto.LoginRequest{Email: "nobody@example.com", Password: "password1"})
	_, errWrongPw := uc.Login(&authdto.LoginRequest{Email: "someone@example.com", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	uc, repo := newTestUsecase()
	user := registerPatient(t, uc, "inactive@example.com")

	user.IsActive = false
	require.NoError(t, repo.Update(user))

	_, err := uc.Login(&authdto.LoginRequest{Email: "inactive@example.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestLogout_RevokesToken(t *testing.T) {
	uc, _ := newTestUsecase()
	registerPatient(t, uc, "bye@example.com")

	resp, err := uc.Login(&authdto.LoginRequest{Email: "bye@example.com", Password: "password1"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, uc.Logout(ctx, resp.AccessToken))

	_, err = uc.ValidateToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	uc, _ := newTestUsecase()

	_, err := uc.ValidateToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_DeactivatedAfterIssue(t *testing.T) {
	uc, repo := newTestUsecase()
	user := registerPatient(t, uc, "revoked@example.com")

	resp, err := uc.Login(&authdto.LoginRequest{Email: "revoked@example.com", Password: "password1"})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, repo.Update(user))

	_, err = uc.ValidateToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestUpdateProfile(t *testing.T) {
	uc, _ := newTestUsecase()
	user := registerPatient(t, uc, "update@example.com")

	lang := "ar"
	phone := "+972501234567"
	updated, err := uc.UpdateProfile(user.ID, &authdto.UpdateProfileRequest{
		LanguagePreference: &lang,
		PhoneNumber:        &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "ar", updated.LanguagePreference)
	assert.Equal(t, "+972501234567", updated.PhoneNumber)

	_, err = uc.UpdateProfile("missing-id", &authdto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
