package service

import (
	"fmt"
	"testing"
	"time"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv 一套落在内存 sqlite 上的完整服务栈
type testEnv struct {
	DB       *gorm.DB
	Auth     *AuthService
	Users    *UserService
	Paths    *PathService
	Progress *ProgressService

	UserRepo     *repository.UserRepository
	ResourceRepo *repository.ResourceRepository
	PathRepo     *repository.LearningPathRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

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

	return &testEnv{
		DB:           db,
		Auth:         NewAuthService(userRepo, nil, cfg),
		Users:        NewUserService(userRepo),
		Paths:        NewPathService(pathRepo, resourceRepo, userRepo),
		Progress:     NewProgressService(pathRepo),
		UserRepo:     userRepo,
		ResourceRepo: resourceRepo,
		PathRepo:     pathRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, email string, interests ...string) *model.User {
	t.Helper()
	user := &model.User{
		Name:      "Test User",
		Email:     email,
		Password:  "secret123",
		Goals:     "learn things",
		Interests: model.StringList(interests),
	}
	_, err := e.Auth.Register(user)
	require.NoError(t, err)
	return user
}

func (e *testEnv) createResource(t *testing.T, title string, tags ...string) *model.Resource {
	t.Helper()
	res := &model.Resource{
		Title:      title,
		Type:       model.TypeArticle,
		Difficulty: model.DifficultyAll,
		TopicTags:  model.StringList(tags),
		URL:        "https://example.com/" + title,
	}
	require.NoError(t, e.ResourceRepo.Create(res))
	return res
}
