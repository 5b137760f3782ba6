package auth_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/docvault/pkg/configs"
	"github.com/yeisme/docvault/pkg/internal/auth"
)

// rawSecret 64 字节的原始密钥，满足 HS512 最小长度.
// 末尾的 '!' 不在 Base64 字母表内，确保密钥按原始字节使用而非被解码.
const rawSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcde!"

func newService(t *testing.T, secret string, ttl time.Duration) *auth.TokenService {
	t.Helper()

	svc, err := auth.NewTokenService(configs.AuthConfig{
		Secret:   secret,
		TokenTTL: ttl,
		Issuer:   "docvault",
	})
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}

	return svc
}

// TestNewTokenService_ShortSecret 测试短密钥导致构造失败.
func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := auth.NewTokenService(configs.AuthConfig{Secret: "too-short"})
	if err == nil {
		t.Fatal("Expected error for secret shorter than 64 bytes, got nil")
	}
}

// TestNewTokenService_Base64AlphabetSecret 测试恰好构成合法 Base64 的密钥按解码后的长度校验.
// 64 个字母数字字符会被成功解码为 48 字节，不足 HS512 的最小密钥长度.
func TestNewTokenService_Base64AlphabetSecret(t *testing.T) {
	secret := strings.Repeat("0123456789abcdef", 4)

	_, err := auth.NewTokenService(configs.AuthConfig{Secret: secret, TokenTTL: time.Hour})
	if err == nil {
		t.Fatal("Expected 64-char base64-decodable secret to be rejected (48 decoded bytes)")
	}
}

// TestNewTokenService_Base64Secret 测试 Base64 编码的密钥被正确解码.
func TestNewTokenService_Base64Secret(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(rawSecret))

	svc := newService(t, encoded, time.Hour)

	dept := int64(7)
	p := &auth.Principal{
		UserID:       42,
		Username:     "alice",
		Roles:        []auth.Role{auth.RoleUser},
		DepartmentID: &dept,
	}

	token, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, ok := svc.Verify(token)
	if !ok {
		t.Fatal("Verify rejected a token issued with base64 secret")
	}

	if got.Username != "alice" {
		t.Errorf("Expected username alice, got %s", got.Username)
	}
}

// TestIssueVerify_Roundtrip 测试签发后验证还原全部身份信息.
func TestIssueVerify_Roundtrip(t *testing.T) {
	svc := newService(t, rawSecret, time.Hour)

	dept := int64(3)
	p := &auth.Principal{
		UserID:       7,
		Username:     "bob",
		Roles:        []auth.Role{auth.RoleAdmin},
		DepartmentID: &dept,
	}

	token, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, ok := svc.Verify(token)
	if !ok {
		t.Fatal("Verify rejected a freshly issued token")
	}

	if got.UserID != 7 {
		t.Errorf("Expected uid 7, got %d", got.UserID)
	}

	if got.Username != "bob" {
		t.Errorf("Expected username bob, got %s", got.Username)
	}

	if !got.IsAdmin() {
		t.Error("Expected admin role to survive the roundtrip")
	}

	if got.DepartmentID == nil || *got.DepartmentID != 3 {
		t.Errorf("Expected departmentId 3, got %v", got.DepartmentID)
	}
}

// TestVerify_NilDepartment 测试无部门用户的令牌不携带 departmentId.
func TestVerify_NilDepartment(t *testing.T) {
	svc := newService(t, rawSecret, time.Hour)

	p := &auth.Principal{UserID: 1, Username: "carol", Roles: []auth.Role{auth.RoleUser}}

	token, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, ok := svc.Verify(token)
	if !ok {
		t.Fatal("Verify rejected token")
	}

	if got.DepartmentID != nil {
		t.Errorf("Expected nil departmentId, got %v", *got.DepartmentID)
	}
}

// TestVerify_Expired 测试过期令牌被拒绝.
func TestVerify_Expired(t *testing.T) {
	svc := newService(t, rawSecret, -time.Minute)

	p := &auth.Principal{UserID: 1, Username: "dave", Roles: []auth.Role{auth.RoleUser}}

	token, err := svc.Issue(p)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, ok := svc.Verify(token); ok {
		t.Error("Expected expired token to be rejected")
	}
}

// TestVerify_WrongKey 测试其他密钥签发的令牌被拒绝.
func TestVerify_WrongKey(t *testing.T) {
	svcA := newService(t, rawSecret, time.Hour)
	svcB := newService(t, strings.Repeat("x!", 32), time.Hour)

	p := &auth.Principal{UserID: 1, Username: "eve", Roles: []auth.Role{auth.RoleUser}}

	token, err := svcA.Issue(p)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, ok := svcB.Verify(token); ok {
		t.Error("Expected token signed with another key to be rejected")
	}
}

// TestVerify_Garbage 测试无法解析的字符串被拒绝.
func TestVerify_Garbage(t *testing.T) {
	svc := newService(t, rawSecret, time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, ok := svc.Verify(tok); ok {
			t.Errorf("Expected garbage token %q to be rejected", tok)
		}
	}
}
