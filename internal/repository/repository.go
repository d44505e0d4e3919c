// internal/repository/repository.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository is the data-access contract shared by every catalog entity.
// Missing rows surface as gorm.ErrRecordNotFound; constraint failures as
// gorm.ErrForeignKeyViolated or gorm.ErrDuplicatedKey.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindMany(ctx context.Context, preloads ...string) ([]T, error)
	FindUnique(ctx context.Context, id uint, preloads ...string) (*T, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, preloads ...string) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// GormRepository is the gorm implementation of Repository.
type GormRepository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func (r *GormRepository[T]) FindMany(ctx context.Context, preloads ...string) ([]T, error) {
	entities := make([]T, 0)
	query := withPreloads(r.db.WithContext(ctx), preloads)
	if err := query.Order("id ASC").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("find many: %w", err)
	}
	return entities, nil
}

func (r *GormRepository[T]) FindUnique(ctx context.Context, id uint, preloads ...string) (*T, error) {
	var entity T
	query := withPreloads(r.db.WithContext(ctx), preloads)
	if err := query.First(&entity, id).Error; err != nil {
		return nil, fmt.Errorf("find %d: %w", id, err)
	}
	return &entity, nil
}

// Update writes fields (column name → value) to the row with id and returns
// the fresh row. The existence check and the write share one transaction.
func (r *GormRepository[T]) Update(ctx context.Context, id uint, fields map[string]interface{}, preloads ...string) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entity T
		if err := tx.First(&entity, id).Error; err != nil {
			return err
		}
		return tx.Model(&entity).Updates(fields).Error
	})
	if err != nil {
		return nil, fmt.Errorf("update %d: %w", id, err)
	}

	return r.FindUnique(ctx, id, preloads...)
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func withPreloads(db *gorm.DB, preloads []string) *gorm.DB {
	for _, preload := range preloads {
		db = db.Preload(preload)
	}
	return db
}
