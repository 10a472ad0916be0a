package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/leon37/DevLink/internal/model"
	"github.com/leon37/DevLink/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateEmail 邮箱已被注册
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials 账号不存在和密码错误统一用这个，模糊报错为了安全
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound Token 里的用户已经不存在了
	ErrUserNotFound = errors.New("user not found")
)

type AuthService struct {
	users    UserRepo
	profiles ProfileRepo
	posts    PostRepo
	tokens   *TokenService
}

func NewAuthService(users UserRepo, profiles ProfileRepo, posts PostRepo, tokens *TokenService) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		posts:    posts,
		tokens:   tokens,
	}
}

// Register 注册逻辑，成功直接返回可用的 Token
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	// 1. 先查一遍邮箱，DB 的唯一索引会兜底并发场景
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	// 2. 密码加密
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// 3. 落库，头像由邮箱确定性生成
	user := &model.User{
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Avatar:    model.GravatarURL(email),
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}

	// 4. 生成 JWT
	return s.tokens.Issue(user.ID.Hex())
}

// Login 登录逻辑，返回 Token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID.Hex())
}

// CurrentUser 按 Token 里的 ID 取用户（密码字段不出 json）
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteAccount 注销账号：档案、用户、帖子一起删
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := s.profiles.DeleteByUserID(ctx, oid); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, oid); err != nil {
		return err
	}
	if err := s.posts.DeleteByUser(ctx, oid); err != nil {
		return err
	}

	slog.Info("account deleted", "userID", userID)
	return nil
}
