package mapper

import (
	"school-backend/internal/application/common"
	"school-backend/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
	}
}

func NewUserResultsFromEntities(users []entities.User) []common.UserResult {
	results := make([]common.UserResult, 0, len(users))
	for i := range users {
		results = append(results, *NewUserResultFromEntity(&users[i]))
	}
	return results
}
