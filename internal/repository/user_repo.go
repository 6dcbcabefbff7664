package repository

import (
	"context"
	"fmt"

	model "auction-house/internal/models"

	"gorm.io/gorm"
)

// UserRepo is the gorm implementation of UserDB
type UserRepo struct {
	db *gorm.DB
	t  table[model.User]
}

// NewUserRepo creates a user repository on top of db
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db, t: table[model.User]{db: db, name: "user"}}
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (model.User, error) {
	return r.t.getByID(ctx, id)
}

// GetByEmail looks a user up by its unique email
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return model.User{}, translate(fmt.Sprintf("get user by email %s", email), err)
	}
	return user, nil
}

func (r *UserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	user.ID = 0
	return r.t.create(ctx, user)
}

func (r *UserRepo) Update(ctx context.Context, user model.User) (model.User, error) {
	return r.t.update(ctx, user.ID, user)
}

func (r *UserRepo) Delete(ctx context.Context, id uint) (bool, error) {
	return r.t.delete(ctx, id)
}

func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	return r.t.list(ctx, "")
}
