package tests

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/simplido/internal/auth"
	"github.com/BuzzLyutic/simplido/internal/model"
	"github.com/BuzzLyutic/simplido/internal/repo"
	"github.com/BuzzLyutic/simplido/internal/service"
)

func TestConcurrent_DuplicateRegistration(t *testing.T) {
	pool, cleanup := SetupTestDB(t)
	defer cleanup()

	TruncateTables(t, pool)

	userRepo := repo.NewUserRepo(pool)
	ctx := context.Background()

	const goroutines = 10

	var wg sync.WaitGroup
	errors := make([]error, goroutines)

	// Одновременная регистрация одного и того же имени:
	// гонку разруливает уникальный индекс, не приложение
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errors[idx] = userRepo.Create(ctx, model.User{
				Username:     "alice",
				Email:        fmt.Sprintf("alice%d@x.com", idx),
				PasswordHash: "h",
			})
		}(i)
	}

	wg.Wait()

	successCount := 0
	conflictCount := 0
	for i, err := range errors {
		switch err {
		case nil:
			successCount++
		case repo.ErrorConflict:
			conflictCount++
		default:
			t.Errorf("unexpected error at %d: %v", i, err)
		}
	}

	assert.Equal(t, 1, successCount, "exactly one registration should succeed")
	assert.Equal(t, goroutines-1, conflictCount, "others should conflict")

	var count int
	pool.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE username = 'alice'").Scan(&count)
	assert.Equal(t, 1, count)
}

func TestConcurrent_ListIsolation(t *testing.T) {
	pool, cleanup := SetupTestDB(t)
	defer cleanup()

	TruncateTables(t, pool)

	alice, _ := SeedUser(t, pool)
	bob, _ := SeedUser(t, pool)

	taskRepo := repo.NewTaskRepo(pool)
	taskService := service.NewTaskService(taskRepo)
	ctx := context.Background()

	const perUser = 20

	var wg sync.WaitGroup

	// Чередующиеся создания от двух пользователей
	for i := 0; i < perUser; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			_, err := taskService.Create(ctx, alice, fmt.Sprintf("alice %d", idx), nil)
			assert.NoError(t, err)
		}(i)
		go func(idx int) {
			defer wg.Done()
			_, err := taskService.Create(ctx, bob, fmt.Sprintf("bob %d", idx), nil)
			assert.NoError(t, err)
		}(i)
	}

	wg.Wait()

	aliceTasks, err := taskService.ListForOwner(ctx, alice)
	require.NoError(t, err)
	bobTasks, err := taskService.ListForOwner(ctx, bob)
	require.NoError(t, err)

	assert.Len(t, aliceTasks, perUser)
	assert.Len(t, bobTasks, perUser)

	for _, task := range aliceTasks {
		assert.Equal(t, alice.ID, task.OwnerID)
	}
	for _, task := range bobTasks {
		assert.Equal(t, bob.ID, task.OwnerID)
	}
}

func TestConcurrent_TokenValidation(t *testing.T) {
	// Валидация - чистое вычисление, гоняем под -race
	tokens := auth.NewTokenService("race-secret", "HS256", time.Hour)

	token, err := tokens.Issue("alice", time.Hour)
	require.NoError(t, err)

	const goroutines = 50
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subject, err := tokens.Validate(token)
			assert.NoError(t, err)
			assert.Equal(t, "alice", subject)
		}()
	}

	wg.Wait()
}
