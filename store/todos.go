package store

import (
	"context"
	"errors"

	"github.com/todoloop/backend/models"
	"gorm.io/gorm"
)

// TodoStore persists todo items. Every operation carries an owner
// predicate in the statement itself, so existence and authorization
// collapse into a single not-found outcome.
type TodoStore struct {
	db *gorm.DB
}

func NewTodoStore(db *gorm.DB) *TodoStore {
	return &TodoStore{db: db}
}

// ListByOwner returns all todos owned by the given user, in insertion order.
func (s *TodoStore) ListByOwner(ctx context.Context, owner uint) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	if err := s.db.WithContext(ctx).Where("owner = ?", owner).Order("id").Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Create inserts a todo. The caller sets Owner from the authenticated
// identity before calling.
func (s *TodoStore) Create(ctx context.Context, todo *models.Todo) error {
	if err := s.db.WithContext(ctx).Create(todo).Error; err != nil {
		return err
	}
	if todo.ID == 0 {
		return errors.New("insert did not return a generated id")
	}
	return nil
}

// Update rewrites title, description and done for the row matching both
// id and owner. Zero matched rows means ErrNotFound, whether the row is
// missing or owned by another user.
func (s *TodoStore) Update(ctx context.Context, owner, id uint, title, description string, done bool) error {
	result := s.db.WithContext(ctx).Model(&models.Todo{}).
		Where("id = ? AND owner = ?", id, owner).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"done":        done,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row matching both id and owner, with the same
// not-found semantics as Update.
func (s *TodoStore) Delete(ctx context.Context, owner, id uint) error {
	result := s.db.WithContext(ctx).Where("id = ? AND owner = ?", id, owner).Delete(&models.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
