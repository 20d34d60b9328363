package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/delivery/dto"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/domain/entity"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/internal/service"
	"github.com/Avinash-0612/fhir-healthcare-lakehouse/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidClientCredentials = errors.New("invalid client credentials")

type AuthUsecase interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	RevokeToken(ctx context.Context, claims *jwt.Claims) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.AuthConfig
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.AuthConfig,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

// IssueToken exchanges the configured service credentials for an access
// token. The token id is held in Redis so tokens stay revocable.
func (u *authUsecase) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	idMatch := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(u.cfg.ClientID))
	secretMatch := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(u.cfg.ClientSecret))
	if idMatch&secretMatch != 1 {
		return nil, ErrInvalidClientCredentials
	}

	token, tokenID, err := u.jwtService.GenerateAccessToken(req.ClientID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	tokenKey := fmt.Sprintf("access_token:%s:%s", req.ClientID, tokenID)
	if err := u.redisClient.Set(ctx, tokenKey, "1", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store token in Redis: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAuthAction(ctx, u.db, req.ClientID, entity.AuditActionTokenIssue, tokenID); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// RevokeToken drops the token id from Redis, invalidating the token before
// its natural expiry.
func (u *authUsecase) RevokeToken(ctx context.Context, claims *jwt.Claims) error {
	tokenKey := fmt.Sprintf("access_token:%s:%s", claims.ClientID, claims.TokenID)
	if err := u.redisClient.Del(ctx, tokenKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}

	if err := u.auditService.LogAuthAction(ctx, u.db, claims.ClientID, entity.AuditActionTokenRevoke, claims.TokenID); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}
