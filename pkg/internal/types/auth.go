package types

// LoginRequest 登录请求.
type LoginRequest struct {
	Username string `json:"username" rule:"required,max=255"`
	Password string `json:"password" rule:"required,max=255"`
}

// LoginResponse 登录响应，携带签发的 Bearer 令牌.
type LoginResponse struct {
	Token        string   `json:"token"`
	TokenType    string   `json:"tokenType"`           // 固定 "Bearer"
	ExpiresIn    int64    `json:"expiresIn"`           // 有效期（秒）
	Username     string   `json:"username"`
	Roles        []string `json:"roles"`
	DepartmentID *int64   `json:"departmentId,omitempty"`
}

// SignupRequest 注册请求.
type SignupRequest struct {
	Username     string `json:"username"     rule:"required,min=3,max=255"`
	Password     string `json:"password"     rule:"required,min=8,max=255"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}

// SignupResponse 注册响应.
type SignupResponse struct {
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
}
