package auth

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yeisme/docvault/pkg/configs"
)

// minKeyBytes HS512 要求的最小密钥长度.
const minKeyBytes = 64

// TokenService 签发与验证 HS512 JWT.
// 令牌无状态：过期是唯一的失效机制，没有吊销列表.
type TokenService struct {
	key    []byte
	ttl    time.Duration
	issuer string
}

// NewTokenService 根据配置构造 TokenService.
// Secret 先尝试标准 Base64 解码，失败则当作原始 UTF-8 字节使用；
// 最终密钥少于 64 字节时返回错误，调用方应让启动失败.
func NewTokenService(cfg configs.AuthConfig) (*TokenService, error) {
	key := decodeSecret(cfg.Secret)
	if len(key) < minKeyBytes {
		return nil, fmt.Errorf("auth secret too short: got %d bytes, need at least %d for HS512", len(key), minKeyBytes)
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = configs.DefaultTokenTTL
	}

	return &TokenService{
		key:    key,
		ttl:    ttl,
		issuer: cfg.Issuer,
	}, nil
}

// decodeSecret Base64 解码密钥，失败则回退为原始字节.
func decodeSecret(secret string) []byte {
	if decoded, err := base64.StdEncoding.DecodeString(secret); err == nil {
		return decoded
	}

	return []byte(secret)
}

// TTL 返回令牌有效期.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue 为 principal 签发新令牌.
func (s *TokenService) Issue(p *Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   p.Username,
		"uid":   p.UserID,
		"roles": p.RoleNames(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	if s.issuer != "" {
		claims["iss"] = s.issuer
	}

	if p.DepartmentID != nil {
		claims["departmentId"] = *p.DepartmentID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify 验证令牌并还原 principal.
// 签名无效、算法不符或已过期时返回 false；声明缺失按零值处理.
func (s *TokenService) Verify(tokenString string) (*Principal, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	return principalFromClaims(claims), true
}

// principalFromClaims 从 MapClaims 还原 Principal，容忍缺失字段.
func principalFromClaims(claims jwt.MapClaims) *Principal {
	p := &Principal{}

	if sub, ok := claims["sub"].(string); ok {
		p.Username = sub
	}

	// JSON 数字经 MapClaims 解码为 float64
	if uid, ok := claims["uid"].(float64); ok {
		p.UserID = int64(uid)
	}

	if raw, ok := claims["roles"].([]any); ok {
		for _, r := range raw {
			if name, ok := r.(string); ok {
				p.Roles = append(p.Roles, ParseRole(name))
			}
		}
	}

	if len(p.Roles) == 0 {
		p.Roles = []Role{RoleUser}
	}

	if dept, ok := claims["departmentId"].(float64); ok {
		id := int64(dept)
		p.DepartmentID = &id
	}

	return p
}
