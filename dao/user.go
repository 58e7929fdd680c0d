package dao

import (
	"context"

	"Xiaoji/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) GetByID(ctx context.Context, userID uint64) (*models.User, error) {
	return u.FindByWhere(ctx, "id = ?", userID)
}

func (u *Users) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.FindByWhere(ctx, "username = ?", username)
}

// BatchGetByIDs 批量查询用户
func (u *Users) BatchGetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	result := make(map[uint64]*models.User)
	if len(ids) == 0 {
		return result, nil
	}

	var users []*models.User
	err := u.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		result[user.ID] = user
	}
	return result, nil
}
