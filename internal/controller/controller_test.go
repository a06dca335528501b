package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/middleware"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"
	"learnpath_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// newTestServer 在内存库上搭出与生产一致的路由表（不含指标与限流）
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-0123456789abcdef"
	cfg.JWT.ExpireTime = time.Hour

	userRepo := repository.NewUserRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	pathRepo := repository.NewLearningPathRepository(db)

	authService := service.NewAuthService(userRepo, nil, cfg)
	userService := service.NewUserService(userRepo)
	resourceService := service.NewResourceService(resourceRepo)
	pathService := service.NewPathService(pathRepo, resourceRepo, userRepo)
	progressService := service.NewProgressService(pathRepo)

	authCtl := NewAuthController(authService)
	userCtl := NewUserController(userService)
	resourceCtl := NewResourceController(resourceService)
	pathCtl := NewPathController(pathService, progressService)
	healthCtl := NewHealthController(db)

	router := gin.New()
	public := router.Group("/api")
	{
		public.GET("/health", healthCtl.HealthCheck)
		public.POST("/auth/register", authCtl.Register)
		public.POST("/auth/login", authCtl.Login)
		public.GET("/resources", resourceCtl.ListResources)
		public.GET("/resources/:id", resourceCtl.GetResource)
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg, nil))
	{
		authed.GET("/auth/profile", authCtl.GetProfile)
		authed.POST("/auth/logout", authCtl.Logout)
		authed.PUT("/users/profile", userCtl.UpdateProfile)
		authed.POST("/paths/generate", pathCtl.GeneratePath)
		authed.GET("/paths/active", pathCtl.GetActivePath)
		authed.PUT("/paths/nodes/:nodeId", pathCtl.UpdateNode)
	}

	return &testServer{Router: router, DB: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) registerUser(t *testing.T, email string, interests ...string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":      "Test User",
		"email":     email,
		"password":  "secret123",
		"interests": interests,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func (s *testServer) seedResource(t *testing.T, title string, tags ...string) {
	t.Helper()
	require.NoError(t, s.DB.Create(&model.Resource{
		Title:     title,
		Type:      model.TypeArticle,
		TopicTags: model.StringList(tags),
		URL:       "https://example.com/" + title,
	}).Error)
}

func TestRegisterEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ada@example.com", body["email"])
	assert.NotEmpty(t, body["token"])
	assert.NotContains(t, body, "password")

	// 重复注册
	rec = srv.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada Again",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Ada",
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []struct {
			Msg   string `json:"msg"`
			Param string `json:"param"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
}

func TestLoginEndpoint(t *testing.T) {
	srv := newTestServer(t)
	srv.registerUser(t, "ada@example.com")

	rec := srv.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "ada@example.com",
		"password": "wrongpass",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
}

func TestProfileRequiresToken(t *testing.T) {
	srv := newTestServer(t)
	token := srv.registerUser(t, "ada@example.com")

	rec := srv.do(t, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/auth/profile", "bogus.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ada@example.com", body["email"])
	assert.NotContains(t, body, "password")
}

func TestUpdateProfileEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.registerUser(t, "ada@example.com")

	rec := srv.do(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"goals":        "ship a backend",
		"currentLevel": "Advanced",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ship a backend", body["goals"])
	assert.Equal(t, "Advanced", body["currentLevel"])

	// 非法等级被校验拦下
	rec = srv.do(t, http.MethodPut, "/api/users/profile", token, gin.H{
		"currentLevel": "Guru",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResourceEndpoints(t *testing.T) {
	srv := newTestServer(t)
	srv.seedResource(t, "Python Crash Course", "python")
	srv.seedResource(t, "Go Basics", "go")

	rec := srv.do(t, http.MethodGet, "/api/resources", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rec = srv.do(t, http.MethodGet, "/api/resources?search=python", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Python Crash Course", list[0]["title"])

	rec = srv.do(t, http.MethodGet, "/api/resources/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/resources/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Resource not found"}`, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/resources/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid resource ID format"}`, rec.Body.String())
}

func TestPathLifecycle(t *testing.T) {
	srv := newTestServer(t)
	srv.seedResource(t, "Python Crash Course", "python")
	srv.seedResource(t, "Automate with Python", "python")
	token := srv.registerUser(t, "ada@example.com", "python")

	// 生成前无激活路径
	rec := srv.do(t, http.MethodGet, "/api/paths/active", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No active learning path found. Generate one?"}`, rec.Body.String())

	// 空请求体也能生成
	rec = srv.do(t, http.MethodPost, "/api/paths/generate", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var generated struct {
		Path  model.LearningPath `json:"path"`
		Nodes []struct {
			ID       string `json:"id"`
			Sequence int    `json:"sequence"`
		} `json:"nodes"`
		Progress struct {
			Percent int `json:"percent"`
		} `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &generated))
	require.Len(t, generated.Nodes, 2)
	assert.True(t, generated.Path.IsActive)

	// 标记第一个节点完成
	rec = srv.do(t, http.MethodPut, "/api/paths/nodes/"+generated.Nodes[0].ID, token, gin.H{
		"completionStatus": "Completed",
		"notes":            "done in one sitting",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Completed", updated["completionStatus"])
	assert.Equal(t, "done in one sitting", updated["notes"])
	assert.NotNil(t, updated["completionDate"])

	rec = srv.do(t, http.MethodGet, "/api/paths/active", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var active struct {
		Progress struct {
			Completed int `json:"completed"`
			Total     int `json:"total"`
			Percent   int `json:"percent"`
		} `json:"progress"`
		Upcoming []struct {
			Sequence int `json:"sequence"`
		} `json:"upcoming"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	assert.Equal(t, 1, active.Progress.Completed)
	assert.Equal(t, 2, active.Progress.Total)
	assert.Equal(t, 50, active.Progress.Percent)
	require.Len(t, active.Upcoming, 1)
	assert.Equal(t, 2, active.Upcoming[0].Sequence)
}

func TestUpdateNodeAuthorization(t *testing.T) {
	srv := newTestServer(t)
	srv.seedResource(t, "Python Crash Course", "python")
	owner := srv.registerUser(t, "owner@example.com", "python")
	intruder := srv.registerUser(t, "intruder@example.com")

	rec := srv.do(t, http.MethodPost, "/api/paths/generate", owner, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var generated struct {
		Nodes []struct {
			ID string `json:"id"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &generated))
	require.NotEmpty(t, generated.Nodes)
	nodeID := generated.Nodes[0].ID

	rec = srv.do(t, http.MethodPut, "/api/paths/nodes/"+nodeID, intruder, gin.H{
		"completionStatus": "Completed",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"User not authorized to update this path node"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPut, "/api/paths/nodes/"+nodeID, owner, gin.H{
		"completionStatus": "Almost",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid completion status"}`, rec.Body.String())

	rec = srv.do(t, http.MethodPut, "/api/paths/nodes/"+uuid.New().String(), owner, gin.H{
		"completionStatus": "Completed",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Learning path node not found"}`, rec.Body.String())
}

func TestGenerateNoMatchingResources(t *testing.T) {
	srv := newTestServer(t)
	srv.seedResource(t, "Python Crash Course", "python")
	token := srv.registerUser(t, "ada@example.com", "haskell")

	rec := srv.do(t, http.MethodPost, "/api/paths/generate", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No relevant resources found for your interests."}`, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
