package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yeisme/docvault/pkg/configs"
	ctxPkg "github.com/yeisme/docvault/pkg/context"
	"github.com/yeisme/docvault/pkg/internal/auth"
	"github.com/yeisme/docvault/pkg/internal/model"
	"github.com/yeisme/docvault/pkg/internal/service"
	"github.com/yeisme/docvault/pkg/internal/storage"
	dbc "github.com/yeisme/docvault/pkg/internal/storage/db"
	"github.com/yeisme/docvault/pkg/internal/types"
)

// testSecret 64 字节原始密钥；末尾的 '!' 避免被当作 Base64 解码.
const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcde!"

// newAuthContext 准备一个带内存 SQLite 的请求上下文与令牌服务.
func newAuthContext(t *testing.T) (context.Context, *auth.TokenService) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open in-memory sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(&model.User{}, &model.Department{}, &model.Client{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	tokens, err := auth.NewTokenService(configs.AuthConfig{Secret: testSecret, TokenTTL: time.Hour})
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}

	mgr := &storage.Manager{DB: &dbc.Client{DB: gdb}}

	return ctxPkg.WithStorageManager(context.Background(), mgr), tokens
}

func TestSignupThenLogin(t *testing.T) {
	ctx, tokens := newAuthContext(t)
	svc := service.NewAuthService(ctx, tokens)

	dept := int64(7)

	signup, err := svc.Signup(ctx, &types.SignupRequest{
		Username:     "alice",
		Password:     "correct horse battery",
		DepartmentID: &dept,
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if signup.UserID == 0 {
		t.Error("Expected a non-zero user ID")
	}

	login, err := svc.Login(ctx, &types.LoginRequest{Username: "alice", Password: "correct horse battery"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if login.TokenType != "Bearer" {
		t.Errorf("Expected token type Bearer, got %q", login.TokenType)
	}

	if login.ExpiresIn != int64(time.Hour.Seconds()) {
		t.Errorf("Expected expiresIn %d, got %d", int64(time.Hour.Seconds()), login.ExpiresIn)
	}

	if login.DepartmentID == nil || *login.DepartmentID != dept {
		t.Errorf("Expected departmentId %d, got %v", dept, login.DepartmentID)
	}

	p, ok := tokens.Verify(login.Token)
	if !ok {
		t.Fatal("Issued token failed verification")
	}

	if p.Username != "alice" || p.IsAdmin() {
		t.Errorf("Unexpected principal: %+v", p)
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	ctx, tokens := newAuthContext(t)
	svc := service.NewAuthService(ctx, tokens)

	req := &types.SignupRequest{Username: "bob", Password: "password123"}

	if _, err := svc.Signup(ctx, req); err != nil {
		t.Fatalf("First signup failed: %v", err)
	}

	if _, err := svc.Signup(ctx, req); !errors.Is(err, types.ErrUserExists) {
		t.Errorf("Expected ErrUserExists, got %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx, tokens := newAuthContext(t)
	svc := service.NewAuthService(ctx, tokens)

	if _, err := svc.Signup(ctx, &types.SignupRequest{Username: "carol", Password: "password123"}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	cases := []struct {
		name string
		req  types.LoginRequest
	}{
		{"wrong password", types.LoginRequest{Username: "carol", Password: "nope"}},
		{"unknown user", types.LoginRequest{Username: "nobody", Password: "password123"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, &tc.req); !errors.Is(err, types.ErrBadCredentials) {
				t.Errorf("Expected ErrBadCredentials, got %v", err)
			}
		})
	}
}

func TestLogin_DisabledUser(t *testing.T) {
	ctx, tokens := newAuthContext(t)
	svc := service.NewAuthService(ctx, tokens)

	if _, err := svc.Signup(ctx, &types.SignupRequest{Username: "dave", Password: "password123"}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	db := ctxPkg.GetDBClient(ctx).GetDB()
	if err := db.Model(&model.User{}).Where("username = ?", "dave").Update("enabled", false).Error; err != nil {
		t.Fatalf("Failed to disable user: %v", err)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{Username: "dave", Password: "password123"}); !errors.Is(err, types.ErrBadCredentials) {
		t.Errorf("Expected ErrBadCredentials for disabled user, got %v", err)
	}
}
