package usecase

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cognicart/internal/config"
	"cognicart/internal/domain/model"
	"cognicart/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	Pincode   string
	Role      string
}

type SigninInput struct {
	Email    string
	Password string
}

// 認証レスポンス（jwt + ユーザ情報）
type AuthOutput struct {
	Token   string
	Message string
	Email   string
	Role    model.Role
}

type AuthUsecase struct {
	users repository.UserRepository
	cfg   config.Config
}

func NewAuthUsecase(users repository.UserRepository, cfg config.Config) *AuthUsecase {
	return &AuthUsecase{users: users, cfg: cfg}
}

func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return nil, NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	//重複チェック
	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewHTTPError(http.StatusConflict, "email already registered")
	}

	role := model.RoleCustomer
	switch strings.ToUpper(strings.TrimSpace(in.Role)) {
	case "", string(model.RoleCustomer):
	case string(model.RoleSeller):
		role = model.RoleSeller
	case string(model.RoleAdmin):
		role = model.RoleAdmin
	default:
		return nil, NewHTTPError(http.StatusBadRequest, "unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		Pincode:      in.Pincode,
		Role:         role,
		IsActive:     true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthOutput{Token: token, Message: "signup successful", Email: user.Email, Role: user.Role}, nil
}

func (u *AuthUsecase) Signin(ctx context.Context, in SigninInput) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	//ユーザ不在とパスワード不一致は同じ応答にする
	if user == nil || !user.IsActive {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthOutput{Token: token, Message: "signin successful", Email: user.Email, Role: user.Role}, nil
}

func (u *AuthUsecase) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.cfg.JWTSecret))
}
