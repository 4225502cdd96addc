package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	MentorRepository     *MentorRepository
	SkillRepository      *SkillRepository
	MeetingRepository    *MeetingRepository
	ConnectionRepository *ConnectionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		MentorRepository:     NewMentorRepository(db),
		SkillRepository:      NewSkillRepository(db),
		MeetingRepository:    NewMeetingRepository(db),
		ConnectionRepository: NewConnectionRepository(db),
	}
}
