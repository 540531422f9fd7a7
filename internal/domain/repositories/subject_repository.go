package repositories

import (
	"context"

	"school-backend/internal/domain/entities"
)

type SubjectRepository interface {
	ListSubjects(ctx context.Context) ([]entities.Subject, error)
	// FindFacultyByCourse returns the first faculty record whose course
	// exactly equals the given name, or (nil, nil) when none matches.
	FindFacultyByCourse(ctx context.Context, course string) (*entities.TeachingFaculty, error)
	ReplaceAll(ctx context.Context, subjects []entities.Subject, faculty []entities.TeachingFaculty) error
}
