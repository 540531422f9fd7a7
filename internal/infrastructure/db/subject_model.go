package db

type SubjectModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"index"`
	Duration   string
	Department string
}

func (SubjectModel) TableName() string {
	return "subjects"
}

type TeachingFacultyModel struct {
	ID      uint   `gorm:"primaryKey"`
	Course  string `gorm:"index"`
	Faculty string
}

func (TeachingFacultyModel) TableName() string {
	return "teaching_faculty"
}
