package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cafestaff/entity"
	"cafestaff/repository"
	"cafestaff/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService checks staff credentials and issues session tokens.
type AuthService struct {
	staffRepo     *repository.StaffRepository
	sessionSecret string
	sessionTTL    time.Duration
	log           *zap.Logger
}

func NewAuthService(repo *repository.StaffRepository, secret string, ttl time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		staffRepo:     repo,
		sessionSecret: secret,
		sessionTTL:    ttl,
		log:           log.Named("auth"),
	}
}

// Authenticate finds the staff row by exact login and checks the password.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*entity.Staff, error) {
	staff, err := s.staffRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Info("login rejected", zap.String("login", login), zap.String("reason", "unknown login"))
			return nil, ErrInvalidUser
		}
		return nil, fmt.Errorf("find staff: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		s.log.Info("login rejected", zap.String("login", login), zap.String("reason", "bad password"))
		return nil, ErrInvalidPassword
	}
	return staff, nil
}

// RegisterInput is what a new staff account needs.
type RegisterInput struct {
	Name     string
	Login    string
	Email    string
	Password string
}

// Register creates a staff account with a hashed password.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.Staff, error) {
	in.Login = strings.TrimSpace(in.Login)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Login == "" || in.Password == "" {
		return nil, errors.New("login and password are required")
	}
	if in.Name == "" {
		in.Name = in.Login
	}

	n, err := s.staffRepo.CountByLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateLogin
	}
	if n, err = s.staffRepo.CountByName(ctx, in.Name); err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrDuplicateName
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	staff := &entity.Staff{
		Name:     in.Name,
		Login:    in.Login,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateLogin
		}
		return nil, err
	}
	return staff, nil
}

// IssueSession signs a session token for staff.
func (s *AuthService) IssueSession(staff *entity.Staff) (string, error) {
	token, err := utils.GenerateSessionToken(staff.ID, staff.Login, s.sessionSecret, s.sessionTTL)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// ResolveSession loads the staff member behind a session token. Any failure
// means the request is anonymous.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*entity.Staff, error) {
	claims, err := utils.ParseSessionToken(token, s.sessionSecret)
	if err != nil {
		return nil, err
	}
	staff, err := s.staffRepo.FindByID(ctx, claims.StaffID)
	if err != nil {
		return nil, notFound(err)
	}
	// a renamed login invalidates older sessions
	if staff.Login != claims.Login {
		return nil, ErrNotFound
	}
	return staff, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
