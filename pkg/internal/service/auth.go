// Package service 实现业务逻辑层，按领域拆分：认证、文档目录、OCR 回调.
// 存储客户端从请求上下文获取（由 StorageMiddleware 注入），
// 目录快照等应用级单例由构造函数显式传入.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeisme/docvault/pkg/configs"
	ctxPkg "github.com/yeisme/docvault/pkg/context"
	"github.com/yeisme/docvault/pkg/internal/auth"
	"github.com/yeisme/docvault/pkg/internal/model"
	"github.com/yeisme/docvault/pkg/internal/storage/db"
	"github.com/yeisme/docvault/pkg/internal/storage/mq"
	"github.com/yeisme/docvault/pkg/internal/types"
	"github.com/yeisme/docvault/pkg/log"
	"github.com/yeisme/docvault/pkg/queue"
)

// producerName 事件头中的生产者标识.
const producerName = "docvault"

// tokenTypeBearer 登录响应中的令牌类型.
const tokenTypeBearer = "Bearer"

// AuthService 处理登录与注册，用户数据以 DB 为真源.
type AuthService struct {
	dbClient *db.Client
	mqClient *mq.Client
	tokens   *auth.TokenService
}

// NewAuthService 从请求上下文组装认证服务.
func NewAuthService(c context.Context, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
		tokens:   tokens,
	}
}

// Login 校验用户名密码并签发令牌.
// 用户不存在、密码错误与账户停用统一返回 ErrBadCredentials，不泄露账户状态.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	var user model.User

	err := s.dbClient.GetDB().WithContext(ctx).
		Where("username = ?", req.Username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrBadCredentials
		}

		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Enabled {
		return nil, types.ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, types.ErrBadCredentials
	}

	token, err := s.tokens.Issue(principalFromUser(&user))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &types.LoginResponse{
		Token:        token,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(s.tokens.TTL().Seconds()),
		Username:     user.Username,
		Roles:        user.Roles(),
		DepartmentID: user.DepartmentID,
	}, nil
}

// Signup 创建新用户（普通角色），用户名冲突返回 ErrUserExists.
func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*types.SignupResponse, error) {
	tx := s.dbClient.GetDB().WithContext(ctx)

	var existing model.User
	if err := tx.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, types.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		DepartmentID: req.DepartmentID,
		Enabled:      true,
	}

	if err := tx.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.publishSignedUp(user)

	return &types.SignupResponse{
		UserID:       user.ID,
		Username:     user.Username,
		DepartmentID: user.DepartmentID,
	}, nil
}

// publishSignedUp 尽力而为地发布注册事件，失败仅记日志.
func (s *AuthService) publishSignedUp(user model.User) {
	if s.mqClient == nil || !configs.GetConfig().Events.Enabled {
		return
	}

	payload := queue.UserSignedUpPayload{
		UserID:       user.ID,
		Username:     user.Username,
		DepartmentID: user.DepartmentID,
	}

	if err := queue.PublishUserSignedUp(s.mqClient.Publisher(), payload, queue.WithProducer(producerName)); err != nil {
		log.Logger().Warn().Err(err).Str("username", user.Username).Msg("Failed to publish user signup event")
	}
}

// principalFromUser 把 DB 用户转为令牌主体.
func principalFromUser(user *model.User) *auth.Principal {
	roles := make([]auth.Role, 0, 1)
	for _, name := range user.Roles() {
		roles = append(roles, auth.ParseRole(name))
	}

	return &auth.Principal{
		UserID:       user.ID,
		Username:     user.Username,
		Roles:        roles,
		DepartmentID: user.DepartmentID,
	}
}
