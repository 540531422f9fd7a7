package services

import (
	"context"
	"fmt"

	"school-backend/internal/application/interfaces"
	"school-backend/internal/application/query"
	"school-backend/internal/domain/repositories"
)

type SubjectService struct {
	subjectRepo repositories.SubjectRepository
}

func NewSubjectService(subjectRepo repositories.SubjectRepository) interfaces.SubjectService {
	return &SubjectService{subjectRepo: subjectRepo}
}

// ListSubjectsFaculty pairs every subject with the first teaching record
// whose course name exactly equals the subject name. Subjects without a
// matching course keep a null faculty.
func (s *SubjectService) ListSubjectsFaculty(ctx context.Context) ([]query.SubjectFacultyResult, error) {
	subjects, err := s.subjectRepo.ListSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	results := make([]query.SubjectFacultyResult, 0, len(subjects))
	for _, subject := range subjects {
		record, err := s.subjectRepo.FindFacultyByCourse(ctx, subject.Name)
		if err != nil {
			return nil, fmt.Errorf("find faculty for course %q: %w", subject.Name, err)
		}

		var faculty *string
		if record != nil {
			faculty = &record.Faculty
		}

		results = append(results, query.SubjectFacultyResult{
			Subject: query.SubjectResult{
				ID:         subject.ID,
				Name:       subject.Name,
				Duration:   subject.Duration,
				Department: subject.Department,
			},
			Faculty: faculty,
		})
	}

	return results, nil
}
