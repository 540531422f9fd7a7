package command

import "school-backend/internal/application/common"

type CreateUserCommand struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type CreateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
