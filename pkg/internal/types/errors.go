// Package types 定义 HTTP 层的请求/响应结构与共享的错误哨兵.
package types

import "errors"

// 服务层错误哨兵，handle 层据此映射 HTTP 状态码.
var (
	// ErrUnauthorized 令牌缺失、签名无效或已过期.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden 已认证但无权访问目标文档.
	ErrForbidden = errors.New("access denied")
	// ErrNotFound 目录中不存在指定文档.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidRequest 请求参数非法（如空路径、"undefined"）.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRemoteUnavailable 远端 OCR 列表全部候选路径探测失败.
	ErrRemoteUnavailable = errors.New("remote listing unavailable")
	// ErrUserExists 注册时用户名已被占用.
	ErrUserExists = errors.New("user already exists")
	// ErrBadCredentials 登录时用户名或密码错误.
	ErrBadCredentials = errors.New("bad credentials")
)
