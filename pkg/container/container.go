package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"polymath-backend/internal/config"
	"polymath-backend/internal/infrastructure/database"

	"polymath-backend/internal/domains/note"
	noteHandler "polymath-backend/internal/domains/note/handler"
	noteRepo "polymath-backend/internal/domains/note/repository"
	noteService "polymath-backend/internal/domains/note/service"
	"polymath-backend/internal/domains/subject"
	subjectHandler "polymath-backend/internal/domains/subject/handler"
	subjectRepo "polymath-backend/internal/domains/subject/repository"
	subjectService "polymath-backend/internal/domains/subject/service"
)

// Container holds all application dependencies, initialized in order:
// infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.SQLiteDB

	SubjectRepo subject.Repository
	NoteRepo    note.Repository

	SubjectService subject.Service
	NoteService    note.Service

	SubjectHandler *subjectHandler.SubjectHandler
	NoteHandler    *noteHandler.NoteHandler
}

// NewContainer builds the dependency graph. The config is constructed
// by the caller and passed in explicitly.
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	c.DB = db

	log.Info().Str("path", cfg.Database.Path).Msg("Database ready")

	c.SubjectRepo = subjectRepo.NewSQLiteRepository(db.SQL)
	c.NoteRepo = noteRepo.NewSQLiteRepository(db.SQL)

	c.SubjectService = subjectService.NewSubjectService(c.SubjectRepo)
	c.NoteService = noteService.NewNoteService(c.NoteRepo, c.SubjectRepo)

	c.SubjectHandler = subjectHandler.NewSubjectHandler(c.SubjectService)
	c.NoteHandler = noteHandler.NewNoteHandler(c.NoteService)

	return c, nil
}

// Cleanup releases held resources. Called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}
}
