package interfaces

import (
	"context"

	"school-backend/internal/application/query"
)

type SubjectService interface {
	ListSubjectsFaculty(ctx context.Context) ([]query.SubjectFacultyResult, error)
}
