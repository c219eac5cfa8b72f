package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/todoloop/backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Name:           username,
		Email:          username + "@example.com",
		Username:       username,
		HashedPassword: "x",
		IsActive:       true,
		Role:           "user",
	}
	require.NoError(t, NewUserStore(db).Create(context.Background(), user))
	return user
}

func TestUserStore_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	require.NotZero(t, alice.ID)

	got, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.Equal(t, "alice@example.com", got.Email)

	byID, err := users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	_, err = users.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_DuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db)
	ctx := context.Background()

	createTestUser(t, db, "alice")

	dupUsername := &models.User{
		Name:           "Alice Again",
		Email:          "other@example.com",
		Username:       "alice",
		HashedPassword: "x",
		IsActive:       true,
	}
	require.ErrorIs(t, users.Create(ctx, dupUsername), ErrConflict)

	dupEmail := &models.User{
		Name:           "Alice Again",
		Email:          "alice@example.com",
		Username:       "alice2",
		HashedPassword: "x",
		IsActive:       true,
	}
	require.ErrorIs(t, users.Create(ctx, dupEmail), ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestTodoStore_OwnerScoping(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	todo := &models.Todo{Title: "Buy milk", Description: "2%", Owner: alice.ID}
	require.NoError(t, todos.Create(ctx, todo))
	require.NotZero(t, todo.ID)

	// Alice sees her item, Bob sees nothing.
	aliceList, err := todos.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceList, 1)
	require.Equal(t, "Buy milk", aliceList[0].Title)
	require.Equal(t, "2%", aliceList[0].Description)
	require.False(t, aliceList[0].Done)

	bobList, err := todos.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, bobList)
	require.Empty(t, bobList)

	// Bob cannot touch Alice's item; the outcome is the same as a
	// missing row.
	require.ErrorIs(t, todos.Update(ctx, bob.ID, todo.ID, "hijack", "", true), ErrNotFound)
	require.ErrorIs(t, todos.Delete(ctx, bob.ID, todo.ID), ErrNotFound)
	require.ErrorIs(t, todos.Update(ctx, alice.ID, 9999, "missing", "", true), ErrNotFound)

	// Alice can.
	require.NoError(t, todos.Update(ctx, alice.ID, todo.ID, "Buy milk", "2%", true))

	aliceList, err = todos.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceList, 1)
	require.True(t, aliceList[0].Done)

	require.NoError(t, todos.Delete(ctx, alice.ID, todo.ID))

	aliceList, err = todos.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, aliceList)
}

func TestTodoStore_OwnerMustExist(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	ctx := context.Background()

	err := todos.Create(ctx, &models.Todo{Title: "orphan", Description: "x", Owner: 9999})
	require.Error(t, err)
}

func TestDeleteUserCascadesTodos(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	for _, title := range []string{"one", "two"} {
		require.NoError(t, todos.Create(ctx, &models.Todo{Title: title, Description: "x", Owner: alice.ID}))
	}
	require.NoError(t, todos.Create(ctx, &models.Todo{Title: "keep", Description: "x", Owner: bob.ID}))

	require.NoError(t, db.Delete(&models.User{}, alice.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Todo{}).Where("owner = ?", alice.ID).Count(&count).Error)
	require.Zero(t, count)

	// Other owners keep their items.
	bobList, err := todos.ListByOwner(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobList, 1)
}

func TestTodoStore_UpdateDoneFalse(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	todo := &models.Todo{Title: "T", Description: "D", Done: true, Owner: alice.ID}
	require.NoError(t, todos.Create(ctx, todo))

	require.NoError(t, todos.Update(ctx, alice.ID, todo.ID, "T", "D", false))

	list, err := todos.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.False(t, list[0].Done)
}

func TestTodoStore_ListInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoStore(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, todos.Create(ctx, &models.Todo{Title: title, Owner: alice.ID}))
	}

	list, err := todos.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "first", list[0].Title)
	require.Equal(t, "second", list[1].Title)
	require.Equal(t, "third", list[2].Title)
}
