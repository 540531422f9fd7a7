package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"school-backend/internal/config"
	"school-backend/internal/domain/entities"
	"school-backend/internal/infrastructure/db"
)

// Seeds the subjects and teaching_faculty tables with the canonical catalog.
func main() {
	_ = godotenv.Load()

	databaseURL := config.GetEnvAsString("DATABASE_URL", "")
	sqlitePath := config.GetEnvAsString("SQLITE_PATH", "school.db")

	conn, err := db.Open(databaseURL, sqlitePath)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	subjects := []entities.Subject{
		{ID: 1, Name: "Mathematics", Duration: "6 months", Department: "Science"},
		{ID: 2, Name: "Physics", Duration: "6 months", Department: "Science"},
		{ID: 3, Name: "Chemistry", Duration: "6 months", Department: "Science"},
	}

	faculty := []entities.TeachingFaculty{
		{Course: "Mathematics", Faculty: "Dr. Smith"},
		{Course: "Physics", Faculty: "Dr. Johnson"},
		{Course: "Chemistry", Faculty: "Dr. Lee"},
	}

	repo := db.NewSubjectRepository(conn)
	if err := repo.ReplaceAll(context.Background(), subjects, faculty); err != nil {
		log.Fatalf("seed database: %v", err)
	}

	log.Printf("seeded %d subjects and %d faculty records", len(subjects), len(faculty))
}
