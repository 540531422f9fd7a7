package entities

type Subject struct {
	ID         uint
	Name       string
	Duration   string
	Department string
}

type TeachingFaculty struct {
	ID      uint
	Course  string
	Faculty string
}
