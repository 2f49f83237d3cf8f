package repo

import (
	"errors"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

// ErrInsufficientStock aborts a checkout transaction when a guarded
// stock decrement matches no row.
var ErrInsufficientStock = errors.New("insufficient stock")
