package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"pylearn_backend/internal/config"
	"pylearn_backend/internal/middleware"
	"pylearn_backend/internal/repository"
	"pylearn_backend/internal/service"
	"pylearn_backend/internal/util"
	"pylearn_backend/pkg/database"
	"pylearn_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "controller-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db := newTestDB(t)
	cfg := testConfig()

	authService := service.NewAuthService(repository.NewUserRepository(db), cfg)
	authController := NewAuthController(authService)

	router := gin.New()
	router.POST("/api/register", authController.Register)
	router.POST("/api/login", authController.Login)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.GET("/profile", authController.GetProfile)
	protected.GET("/whoami", func(ctx *gin.Context) {
		claims := util.GetUserFromContext(ctx)
		util.Success(ctx, gin.H{"user_id": claims.UserID})
	})

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	// 注册
	w := postJSON(t, router, "/api/register", gin.H{
		"username": "ivan",
		"email":    "ivan@example.com",
		"password": "supersecret",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// 重复注册 → 409
	w = postJSON(t, router, "/api/register", gin.H{
		"username": "ivan",
		"email":    "ivan2@example.com",
		"password": "supersecret",
	}, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", w.Code)
	}

	// 错误口令 → 401
	w = postJSON(t, router, "/api/login", gin.H{
		"username": "ivan",
		"password": "wrong",
	}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", w.Code)
	}

	// 正确登录 → token
	w = postJSON(t, router, "/api/login", gin.H{
		"username": "ivan",
		"password": "supersecret",
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			User        struct {
				ID       uint   `json:"id"`
				Username string `json:"username"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Data.AccessToken == "" || resp.Data.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp.Data)
	}
	if resp.Data.User.Username != "ivan" {
		t.Fatalf("unexpected user payload: %+v", resp.Data.User)
	}

	// 带 token 访问受保护路由
	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rec.Code)
	}

	// 登录用户可以取回自己的档案
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.AccessToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for profile, got %d", rec.Code)
	}
	var profile struct {
		Data struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Data.Username != "ivan" || profile.Data.Email != "ivan@example.com" {
		t.Fatalf("unexpected profile payload: %+v", profile.Data)
	}

	// 无 token → 401
	req = httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRegister_Validation(t *testing.T) {
	router := newTestRouter(t)

	// 用户名过短
	w := postJSON(t, router, "/api/register", gin.H{
		"username": "ab",
		"email":    "ab@example.com",
		"password": "supersecret",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short username, got %d", w.Code)
	}

	// 口令过短
	w = postJSON(t, router, "/api/register", gin.H{
		"username": "valid",
		"email":    "valid@example.com",
		"password": "short",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", w.Code)
	}

	// 非法邮箱
	w = postJSON(t, router, "/api/register", gin.H{
		"username": "valid",
		"email":    "not-an-email",
		"password": "supersecret",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", w.Code)
	}
}
