package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListQuery is one page of a list screen. Sort and SearchColumns must come
// from a model view's whitelist, never from raw user input.
type ListQuery struct {
	Page          int
	Limit         int
	Sort          string
	Desc          bool
	Search        string
	SearchColumns []string
	Preloads      []string
}

// Normalize clamps paging to sane values and defaults the sort column.
func (q *ListQuery) Normalize(defaultLimit int) {
	if defaultLimit <= 0 || defaultLimit > MaxLimit {
		defaultLimit = DefaultLimit
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = defaultLimit
	}
	if q.Sort == "" {
		q.Sort = "id"
	}
}

func (q ListQuery) Offset() int { return (q.Page - 1) * q.Limit }

// ChildRef names a nullable foreign key column that points at the
// repository's table.
type ChildRef struct {
	Table  string
	Column string
}

// CrudRepository is the gorm access shared by every admin screen.
type CrudRepository[T any] struct {
	DB *gorm.DB

	// children get their foreign key nulled when a row is deleted
	children []ChildRef
}

func NewCrudRepository[T any](db *gorm.DB, children ...ChildRef) *CrudRepository[T] {
	return &CrudRepository[T]{DB: db, children: children}
}

func (r *CrudRepository[T]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	tx := r.DB.WithContext(ctx).Model(new(T))

	if s := strings.TrimSpace(q.Search); s != "" && len(q.SearchColumns) > 0 {
		conds := make([]string, 0, len(q.SearchColumns))
		args := make([]any, 0, len(q.SearchColumns))
		pattern := "%" + strings.ToLower(s) + "%"
		for _, col := range q.SearchColumns {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, pattern)
		}
		tx = tx.Where(strings.Join(conds, " OR "), args...)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, p := range q.Preloads {
		tx = tx.Preload(p)
	}

	items := make([]T, 0, q.Limit)
	err := tx.
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort}, Desc: q.Desc}).
		Limit(q.Limit).Offset(q.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CrudRepository[T]) FindByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	tx := r.DB.WithContext(ctx)
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	var item T
	if err := tx.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CrudRepository[T]) Create(ctx context.Context, item *T) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// Update writes every column of item, zero values included.
func (r *CrudRepository[T]) Update(ctx context.Context, item *T) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

// Delete removes the row and nulls the foreign keys of its children in one
// transaction. Returns gorm.ErrRecordNotFound when nothing was deleted.
func (r *CrudRepository[T]) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.DeleteTx(tx, id)
	})
}

// DeleteTx is Delete inside a caller-owned transaction.
func (r *CrudRepository[T]) DeleteTx(tx *gorm.DB, id uint) error {
	for _, ch := range r.children {
		if err := tx.Table(ch.Table).Where(clause.Eq{Column: clause.Column{Name: ch.Column}, Value: id}).
			Update(ch.Column, nil).Error; err != nil {
			return fmt.Errorf("detach %s.%s: %w", ch.Table, ch.Column, err)
		}
	}
	res := tx.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
