package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"contentcraft-be/internal/entity"
	"contentcraft-be/internal/repository/specification"
	"contentcraft-be/internal/repository/unitofwork"
	"contentcraft-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ContentRepository())
	assert.NotNil(t, uow.SystemLogRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Content Repository round trip", func(t *testing.T) {
		ctx := context.Background()
		userId := uuid.New()

		// Content rows carry a user FK, so create a throwaway owner first.
		owner := &entity.User{
			Id:           userId,
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			PasswordHash: "not-a-real-hash",
			FullName:     "Integration Test User",
		}
		require.NoError(t, uow.UserRepository().Create(ctx, owner))

		contentId := uuid.New()
		record := &entity.Content{
			Id:          contentId,
			UserId:      userId,
			Title:       "Integration Draft",
			Content:     "one two three",
			ContentType: entity.ContentTypeDraft,
			Tags:        []string{"integration", "test"},
			Niche:       "testing",
			WordCount:   3,
		}
		require.NoError(t, uow.ContentRepository().Create(ctx, record))

		defer func() {
			assert.NoError(t, uow.ContentRepository().Delete(ctx, contentId))
		}()

		found, err := uow.ContentRepository().FindOne(ctx,
			specification.ByID{ID: contentId},
			specification.OwnedBy{UserID: userId},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Integration Draft", found.Title)
		assert.Equal(t, entity.ContentTypeDraft, found.ContentType)
		assert.Equal(t, []string{"integration", "test"}, found.Tags)

		// Another owner must not see the record.
		foreign, err := uow.ContentRepository().FindOne(ctx,
			specification.ByID{ID: contentId},
			specification.OwnedBy{UserID: uuid.New()},
		)
		require.NoError(t, err)
		assert.Nil(t, foreign)
	})

	t.Run("Check System Log Repository", func(t *testing.T) {
		count, err := uow.SystemLogRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("SystemLog count: %d", count)
	})
}
