package service

import (
	"errors"

	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"
	"go-gestion-stock/pkg/jwt"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidRole        = errors.New("role must be 'commercial' or 'vendeur'")
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Register(req *RegisterRequest) (uuid.UUID, error)
	GetUser(id uuid.UUID) (*model.User, error)
	GetAllUsers() ([]model.User, error)
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// RegisterRequest creates a new account. Only a commercial may call the
// endpoint; the middleware enforces that before this payload is seen.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Register(req *RegisterRequest) (uuid.UUID, error) {
	if req.Role != model.RoleCommercial && req.Role != model.RoleVendeur {
		return uuid.Nil, ErrInvalidRole
	}

	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return uuid.Nil, ErrUsernameTaken
	}

	user := &model.User{
		Username: req.Username,
		Role:     req.Role,
		Nom:      req.Nom,
		Prenom:   req.Prenom,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return uuid.Nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

func (s *authService) GetUser(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *authService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}
