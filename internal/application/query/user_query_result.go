package query

import "school-backend/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type UserListQueryResult struct {
	Result []common.UserResult `json:"result"`
}
