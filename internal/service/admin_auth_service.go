package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/ppob-ledger/internal/service/tokens"
	"github.com/fsdevblog/ppob-ledger/pkg/uow"
)

const JWTTokenExpire = 8 * time.Hour

type AdminAuthService struct {
	adminRepo      AdminRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewAdminAuthService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*AdminAuthService, error) {
	adminRepo, err := uow.GetRepositoryAs[AdminRepository](u, uow.RepositoryName(repoargs.AdminRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &AdminAuthService{
		adminRepo:      adminRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

// CreateAdmin заводит оператора. Если юзернейм занят, вернется ошибка domain.ErrDuplicateKey.
func (s *AdminAuthService) CreateAdmin(ctx context.Context, args LoginAdminArgs) (*domain.Admin, error) {
	hash, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("create admin: %w", hashErr)
	}
	admin, err := s.adminRepo.Create(ctx, args.Username, hash)
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

type LoginAdminArgs struct {
	Username string
	Password string
}

// Login проверяет пароль оператора и выпускает jwt токен. Неизвестный юзернейм и неверный пароль
// неразличимы: оба возвращают domain.ErrPasswordMissMatch.
func (s *AdminAuthService) Login(ctx context.Context, args LoginAdminArgs) (*domain.Admin, string, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, args.Username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrPasswordMissMatch
		}
		return nil, "", fmt.Errorf("admin login: %w", err)
	}

	if !s.hasher.ComparePassword(args.Password, admin.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateAdminJWT(admin.ID, admin.Username, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("admin login: %w", tokenErr)
	}
	return admin, token, nil
}
