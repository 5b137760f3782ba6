package handle

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/docvault/pkg/internal/types"
)

// TestWriteError_StatusMapping 验证服务层错误哨兵到 HTTP 状态码的映射.
func TestWriteError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid request", types.ErrInvalidRequest, http.StatusBadRequest},
		{"unauthorized", types.ErrUnauthorized, http.StatusUnauthorized},
		{"bad credentials", types.ErrBadCredentials, http.StatusUnauthorized},
		{"forbidden", types.ErrForbidden, http.StatusForbidden},
		{"not found wrapped", fmt.Errorf("%w: report.pdf", types.ErrNotFound), http.StatusNotFound},
		{"user exists", types.ErrUserExists, http.StatusConflict},
		{"remote unavailable", types.ErrRemoteUnavailable, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, tt.err)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestDefaultHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	DefaultHandler(c)

	if w.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotImplemented)
	}
}
