package usecase

import (
	"context"
	"time"

	authdomain "caresync/internal/auth/domain"
	authdto "caresync/internal/auth/dto"
	"caresync/internal/auth/repository"
	"caresync/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo       repository.UserRepository
	revocationRepo repository.TokenRevocationRepository
	config         *config.Config
	log            *zap.Logger
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, revocationRepo repository.TokenRevocationRepository, cfg *config.Config, log *zap.Logger) AuthUsecase {
	return &authUsecase{
		userRepo:       userRepo,
		revocationRepo: revocationRepo,
		config:         cfg,
		log:            log.With(zap.String("module", "auth")),
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	language := req.LanguagePreference
	if language == "" {
		language = "he"
	}

	user := &authdomain.User{
		Email:              req.Email,
		PasswordHash:       hashedPassword,
		Role:               authdomain.Role(req.Role),
		IsActive:           true,
		LanguagePreference: language,
		PhoneNumber:        req.PhoneNumber,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	u.log.Info("new user registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Same error for unknown email and wrong password
	if user == nil || !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	accessToken, err := u.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	u.log.Info("user logged in", zap.String("user_id", user.ID))

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, tokenString string) error {
	claims, err := u.parseClaims(tokenString)
	if err != nil {
		return err
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return ErrInvalidToken
	}

	ttl := time.Duration(0)
	if exp, ok := claims["exp"].(float64); ok {
		ttl = time.Until(time.Unix(int64(exp), 0))
	}

	if err := u.revocationRepo.Revoke(ctx, jti, ttl); err != nil {
		return err
	}

	u.log.Info("token revoked", zap.String("jti", jti))
	return nil
}

func (u *authUsecase) ValidateToken(ctx context.Context, tokenString string) (*authdomain.User, error) {
	claims, err := u.parseClaims(tokenString)
	if err != nil {
		return nil, err
	}

	jti, _ := claims["jti"].(string)
	if jti != "" {
		revoked, err := u.revocationRepo.IsRevoked(ctx, jti)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	return user, nil
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.LanguagePreference != nil {
		user.LanguagePreference = *req.LanguagePreference
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"jti":     uuid.New().String(),
		"exp":     now.Add(u.config.JWTExpiry).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
