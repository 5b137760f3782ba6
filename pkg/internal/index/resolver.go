package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeisme/docvault/pkg/internal/types"
)

// Resolver 把文档名解析为可下载的本地路径或远端 URL.
type Resolver struct {
	idx *Index
	// local 仅本地模式非 nil
	local *LocalSource
}

// NewResolver 构造 Resolver；远端模式传入 nil local.
func NewResolver(idx *Index, local *LocalSource) *Resolver {
	return &Resolver{idx: idx, local: local}
}

// Resolve 按名称定位文档.
// 名称中的目录成分一律剥除（防穿越）；本地模式查目录实盘，
// 远端模式只查快照（返回远端 URL）.
func (r *Resolver) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty file name", types.ErrInvalidRequest)
	}

	// 只保留最后一个路径成分
	base := filepath.Base(name)
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: invalid file name %q", types.ErrInvalidRequest, name)
	}

	if r.local != nil {
		if rec, ok := r.local.FindLive(base); ok {
			return rec.Path, nil
		}

		return "", fmt.Errorf("%w: %s", types.ErrNotFound, base)
	}

	if rec, ok := r.idx.FindByName(base); ok {
		return rec.Path, nil
	}

	return "", fmt.Errorf("%w: %s", types.ErrNotFound, base)
}

// OpenAbsolute 校验并返回一个绝对路径，供特权下载端点直接发送.
// 空路径和字面量 "undefined"（前端未绑定变量的典型产物）按 BadRequest 处理.
func (r *Resolver) OpenAbsolute(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" || strings.EqualFold(path, "undefined") {
		return "", fmt.Errorf("%w: missing file path", types.ErrInvalidRequest)
	}

	clean := filepath.Clean(path)

	info, err := os.Stat(clean)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", types.ErrNotFound, clean)
	}

	return clean, nil
}
