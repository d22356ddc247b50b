package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-restaurante/internal/application/dto"
	"github.com/jhoicas/inventario-restaurante/internal/domain"
	"github.com/jhoicas/inventario-restaurante/internal/domain/entity"
	"github.com/jhoicas/inventario-restaurante/internal/domain/repository"
	"github.com/jhoicas/inventario-restaurante/pkg/jwt"
)

var accessCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

const minPasswordLength = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: código de acceso, email/contraseña y registro.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// LoginWithCode autentica con el código numérico de 6 dígitos que usa el personal.
func (uc *AuthUseCase) LoginWithCode(ctx context.Context, in dto.CodeLoginRequest) (*dto.LoginResponse, error) {
	code := strings.TrimSpace(in.Code)
	if !accessCodePattern.MatchString(code) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByAccessCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(user)
}

// SignIn verifica email/password y genera el token.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(user)
}

// SignUp registra un empleado con email y contraseña. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") || len(in.Password) < minPasswordLength {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleEmpleado,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Me devuelve el usuario autenticado. El id sale del token.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}
