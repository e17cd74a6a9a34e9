package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adaskevich/tasktracker/internal/models"
	"github.com/adaskevich/tasktracker/internal/repository"
	"github.com/adaskevich/tasktracker/internal/utils"
)

// AccessClaims is the payload carried by issued access tokens.
type AccessClaims struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthService handles registration, authentication and token issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	roleNames []string
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. roleNames is the set of roles a
// user may register with, in the order error messages enumerate them.
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	roleNames []string,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}
	return &AuthService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		roleNames: roleNames,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Login    string
	Email    string
	Password string
	Role     string
}

// Register creates a new user holding the requested role.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	role, err := s.roleRepo.FindByPosition(input.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newValidationError(
				"Role permission must be one of: %s", utils.QuoteJoin(s.roleNames))
		}
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	if _, err := s.userRepo.FindByLogin(input.Login); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check login: %w", err)
	}
	if existing, err := s.userRepo.FindAllByEmails([]string{input.Email}); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if len(existing) > 0 {
		return nil, ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: string(hashed),
		RoleID:       &role.ID,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		// Unique index race between the existence checks and the insert.
		return nil, ErrDuplicateUser
	}

	return user, nil
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(login, password string) (*models.User, error) {
	user, err := s.userRepo.FindByLogin(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs an access token for the user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Username: user.Login,
		Role:     user.RolePosition(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// GetUserByLogin retrieves a user by login, with the role attached.
func (s *AuthService) GetUserByLogin(login string) (*models.User, error) {
	user, err := s.userRepo.FindByLogin(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFoundError("User with login «%s» not found", login)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
