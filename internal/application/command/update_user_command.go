package command

import "school-backend/internal/application/common"

// UpdateUserCommand carries a partial update: nil fields were absent from the
// request and must not overwrite stored values.
type UpdateUserCommand struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
}

type UpdateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
