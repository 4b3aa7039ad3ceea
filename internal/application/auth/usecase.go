package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesiana/inventory-system/internal/domain"
	"github.com/salesiana/inventory-system/internal/domain/entity"
	"github.com/salesiana/inventory-system/internal/domain/repository"
	"github.com/salesiana/inventory-system/pkg/jwt"
)

// JWTConfig parámetros de firma del token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase resuelve el actor: login con username/password y emisión de JWT.
// El middleware HTTP usa el token para adjuntar el UserID a cada petición;
// el motor de inventario nunca consulta la sesión directamente.
type AuthUseCase struct {
	users repository.UserRepository
	jwt   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwt: cfg}
}

// Login verifica las credenciales y devuelve un token firmado más el usuario.
// Credenciales inválidas y usuario inexistente devuelven el mismo error
// para no filtrar qué usernames existen.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthenticated
	}
	token, err := jwt.Generate(uc.jwt.Secret, user.ID, user.Role, uc.jwt.Issuer, uc.jwt.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register crea un usuario con la contraseña hasheada (bcrypt).
func (uc *AuthUseCase) Register(ctx context.Context, username, fullName, password, role string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}
	existing, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = entity.RoleConsultor
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
