package query

// SubjectResult mirrors one subjects table row.
type SubjectResult struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Duration   string `json:"duration"`
	Department string `json:"department"`
}

// SubjectFacultyResult pairs a subject with the faculty teaching it. Faculty
// is null when no teaching record has a matching course name.
type SubjectFacultyResult struct {
	Subject SubjectResult `json:"subject"`
	Faculty *string       `json:"faculty"`
}
