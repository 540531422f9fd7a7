package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-backend/internal/application/interfaces"
	"school-backend/internal/domain/entities"
	"school-backend/internal/domain/repositories"
	"school-backend/internal/infrastructure/db"
)

func newTestSubjectService(t *testing.T) (interfaces.SubjectService, repositories.SubjectRepository) {
	t.Helper()

	conn, err := db.Open("", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	repo := db.NewSubjectRepository(conn)
	return NewSubjectService(repo), repo
}

func TestListSubjectsFaculty(t *testing.T) {
	svc, repo := newTestSubjectService(t)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx,
		[]entities.Subject{
			{ID: 1, Name: "Mathematics", Duration: "6 months", Department: "Science"},
			{ID: 2, Name: "Physics", Duration: "6 months", Department: "Science"},
			{ID: 3, Name: "Art History", Duration: "3 months", Department: "Humanities"},
		},
		[]entities.TeachingFaculty{
			{Course: "Mathematics", Faculty: "Dr. Smith"},
			{Course: "Physics", Faculty: "Dr. Johnson"},
		},
	)
	require.NoError(t, err)

	results, err := svc.ListSubjectsFaculty(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Mathematics", results[0].Subject.Name)
	require.NotNil(t, results[0].Faculty)
	assert.Equal(t, "Dr. Smith", *results[0].Faculty)

	require.NotNil(t, results[1].Faculty)
	assert.Equal(t, "Dr. Johnson", *results[1].Faculty)

	// no teaching record for Art History
	assert.Nil(t, results[2].Faculty)
}

func TestListSubjectsFaculty_FirstMatchWins(t *testing.T) {
	svc, repo := newTestSubjectService(t)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx,
		[]entities.Subject{
			{ID: 1, Name: "Chemistry", Duration: "6 months", Department: "Science"},
		},
		[]entities.TeachingFaculty{
			{Course: "Chemistry", Faculty: "Dr. Lee"},
			{Course: "Chemistry", Faculty: "Dr. Brown"},
		},
	)
	require.NoError(t, err)

	results, err := svc.ListSubjectsFaculty(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Faculty)
	assert.Equal(t, "Dr. Lee", *results[0].Faculty)
}

func TestListSubjectsFaculty_CaseSensitiveMatch(t *testing.T) {
	svc, repo := newTestSubjectService(t)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx,
		[]entities.Subject{
			{ID: 1, Name: "Physics", Duration: "6 months", Department: "Science"},
		},
		[]entities.TeachingFaculty{
			{Course: "physics", Faculty: "Dr. Johnson"},
		},
	)
	require.NoError(t, err)

	results, err := svc.ListSubjectsFaculty(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Faculty)
}

func TestListSubjectsFaculty_Empty(t *testing.T) {
	svc, _ := newTestSubjectService(t)

	results, err := svc.ListSubjectsFaculty(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
