package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"school-backend/internal/domain/entities"
	"school-backend/internal/domain/repositories"
)

type SubjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) repositories.SubjectRepository {
	return &SubjectRepository{db: db}
}

func (r *SubjectRepository) ListSubjects(ctx context.Context) ([]entities.Subject, error) {
	var subjectModels []SubjectModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&subjectModels).Error; err != nil {
		return nil, err
	}

	subjects := make([]entities.Subject, 0, len(subjectModels))
	for _, m := range subjectModels {
		subjects = append(subjects, entities.Subject{
			ID:         m.ID,
			Name:       m.Name,
			Duration:   m.Duration,
			Department: m.Department,
		})
	}
	return subjects, nil
}

func (r *SubjectRepository) FindFacultyByCourse(ctx context.Context, course string) (*entities.TeachingFaculty, error) {
	var facultyModel TeachingFacultyModel
	if err := r.db.WithContext(ctx).Where("course = ?", course).Order("id ASC").First(&facultyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.TeachingFaculty{
		ID:      facultyModel.ID,
		Course:  facultyModel.Course,
		Faculty: facultyModel.Faculty,
	}, nil
}

// ReplaceAll clears both tables and inserts the given rows in one
// transaction. Used by the seed command.
func (r *SubjectRepository) ReplaceAll(ctx context.Context, subjects []entities.Subject, faculty []entities.TeachingFaculty) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&SubjectModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&TeachingFacultyModel{}).Error; err != nil {
			return err
		}

		for _, s := range subjects {
			model := SubjectModel{
				ID:         s.ID,
				Name:       s.Name,
				Duration:   s.Duration,
				Department: s.Department,
			}
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}

		for _, f := range faculty {
			model := TeachingFacultyModel{
				Course:  f.Course,
				Faculty: f.Faculty,
			}
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
