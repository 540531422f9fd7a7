package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"school-backend/internal/domain/entities"
	"school-backend/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		CreatedAt: userEntity.CreatedAt,
		UpdatedAt: userEntity.UpdatedAt,
		Username:  userEntity.Username,
		Email:     userEntity.Email,
		FullName:  userEntity.FullName,
		Password:  userEntity.Password,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, translateError(err)
	}

	return r.FindByID(ctx, userModel.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

// List returns users ordered by primary key so pages are stable across calls.
func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]entities.User, error) {
	var userModels []UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *r.mapToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		ID:        userEntity.ID,
		CreatedAt: userEntity.CreatedAt,
		UpdatedAt: userEntity.UpdatedAt,
		Username:  userEntity.Username,
		Email:     userEntity.Email,
		FullName:  userEntity.FullName,
		Password:  userEntity.Password,
	}

	if err := r.db.WithContext(ctx).Save(&userModel).Error; err != nil {
		return nil, translateError(err)
	}

	return r.FindByID(ctx, userEntity.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id).Error
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:        userModel.ID,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Username:  userModel.Username,
		Email:     userModel.Email,
		FullName:  userModel.FullName,
		Password:  userModel.Password,
	}
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", repositories.ErrDuplicateKey, err)
	}
	return err
}
