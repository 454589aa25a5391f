package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestOK(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		OK(c, gin.H{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if resp.Code != 200 {
		t.Errorf("Expected body code 200, got %d", resp.Code)
	}
	if resp.Message != "success" {
		t.Errorf("Expected message 'success', got %q", resp.Message)
	}
}

func TestOKMsg(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		OKMsg(c, "首页缓存已清除", nil)
	})

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if resp.Code != 200 || resp.Message != "首页缓存已清除" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestFailErr(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		FailErr(c, ErrUnauthorized(""))
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if resp.Code != 401 {
		t.Errorf("Expected body code 401, got %d", resp.Code)
	}
}

func TestOKItems(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		OKItems(c, []string{"a", "b"}, 2, 1, 15)
	})

	var resp struct {
		Code int      `json:"code"`
		Data ListData `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if resp.Data.Total != 2 || resp.Data.Page != 1 || resp.Data.PageSize != 15 {
		t.Errorf("Unexpected pagination: %+v", resp.Data)
	}
}
