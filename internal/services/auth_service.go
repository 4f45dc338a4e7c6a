package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/config"
	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	activity *ActivityService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, activity *ActivityService) *AuthService {
	return &AuthService{db: db, cfg: cfg, activity: activity}
}

// RegisterPatient creates an auto-approved patient account and logs it in.
// Duplicate username and email are pre-checked so a rejected registration
// leaves the store untouched.
func (s *AuthService) RegisterPatient(req *dto.RegisterRequest, ip string) (*dto.AuthResponse, error) {
	if err := s.checkAvailability(req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:         uuid.New(),
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hash),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		City:       req.City,
		Role:       models.RolePatient,
		IsApproved: true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.activity.Record(user.ID, models.ActionRegistration,
		"New patient registration: "+user.FullName(), ip)

	return s.generateTokenPair(&user)
}

// RegisterProvider creates an unapproved provider account with its
// ServiceProvider row. No tokens are issued until an admin approves it.
func (s *AuthService) RegisterProvider(req *dto.RegisterProviderRequest, ip string) (*models.User, error) {
	if err := s.checkAvailability(req.Username, req.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:         uuid.New(),
		Username:   req.Username,
		Email:      req.Email,
		Password:   string(hash),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		City:       req.City,
		Role:       models.RoleProvider,
		IsApproved: false,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		provider := models.ServiceProvider{
			ID:           uuid.New(),
			UserID:       user.ID,
			BusinessName: req.BusinessName,
			ProviderType: req.ProviderType,
		}
		if err := tx.Create(&provider).Error; err != nil {
			return fmt.Errorf("failed to create service provider: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(user.ID, models.ActionRegistration,
		"New provider registration: "+req.BusinessName, ip)

	return &user, nil
}

func (s *AuthService) Login(req *dto.LoginRequest, ip string) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.activity.Record(user.ID, models.ActionLogin, "", ip)

	return s.generateTokenPair(&user)
}

// Refresh rotates a refresh token: the presented token is revoked whether
// it is expired or successfully exchanged.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Logout(userID uuid.UUID, req *dto.LogoutRequest, ip string) error {
	tokenHash := hashToken(req.RefreshToken)
	err := s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
	if err != nil {
		return err
	}

	s.activity.Record(userID, models.ActionLogout, "", ip)
	return nil
}

// EmailExists backs the forgot-password flow; no reset is actually issued.
func (s *AuthService) EmailExists(email string) bool {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func (s *AuthService) checkAvailability(username, email string) error {
	var count int64
	s.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return ErrUsernameTaken
	}
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return ErrEmailTaken
	}
	return nil
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:         user.ID,
			Username:   user.Username,
			Email:      user.Email,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Role:       user.Role,
			IsApproved: user.IsApproved,
		},
		Redirect: RedirectFor(user),
	}, nil
}

// RedirectFor returns the landing path for an account's role.
func RedirectFor(user *models.User) string {
	if user.IsAdmin() {
		return "/admin-panel"
	}
	return "/dashboard"
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
