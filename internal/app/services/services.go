package services

import (
	"context"

	"github.com/yigit/mentorhub/internal/app/models"
)

// Services defined in this package:
// - StudentService: registration, login and profile management for students
// - MentorService: registration, login, profile and calendly link management for mentors
// - SkillService: skill catalog and mentor skill tagging
// - MeetingService: meeting request lifecycle between students and mentors
// - ConnectionService: student-mentor connection approval lifecycle
//
// Each service receives its store dependencies through its constructor. The
// store interfaces below are satisfied by the concrete repositories and keep
// the services testable without a database.

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

type mentorStore interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id int64) (*models.Mentor, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]*models.Mentor, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	Delete(ctx context.Context, id int64) error
}

type skillStore interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id int64) (*models.Skill, error)
	GetByName(ctx context.Context, name string) (*models.Skill, error)
	GetAll(ctx context.Context) ([]*models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id int64) error
	SkillsOfMentor(ctx context.Context, mentorID int64) ([]*models.Skill, error)
	MentorsOfSkill(ctx context.Context, skillID int64) ([]int64, error)
	CountMentorsOfSkill(ctx context.Context, skillID int64) (int64, error)
	Attach(ctx context.Context, mentorID, skillID int64) error
	Detach(ctx context.Context, mentorID, skillID int64) (bool, error)
}

type meetingStore interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	GetByID(ctx context.Context, id int64) (*models.Meeting, error)
	GetAll(ctx context.Context) ([]*models.Meeting, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Meeting, error)
	GetByMentorID(ctx context.Context, mentorID int64) ([]*models.Meeting, error)
	GetByStatus(ctx context.Context, status models.MeetingStatus) ([]*models.Meeting, error)
	GetByMentorIDAndStatus(ctx context.Context, mentorID int64, status models.MeetingStatus) ([]*models.Meeting, error)
	GetByStudentIDAndStatusIn(ctx context.Context, studentID int64, statuses []models.MeetingStatus) ([]*models.Meeting, error)
	UpdateStatus(ctx context.Context, id int64, status models.MeetingStatus) error
	Delete(ctx context.Context, id int64) error
}

type connectionStore interface {
	Create(ctx context.Context, connection *models.StudentMentorConnection) error
	GetByID(ctx context.Context, id int64) (*models.StudentMentorConnection, error)
	GetByStudentAndMentor(ctx context.Context, studentID, mentorID int64) (*models.StudentMentorConnection, error)
	GetAll(ctx context.Context) ([]*models.StudentMentorConnection, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.StudentMentorConnection, error)
	GetByMentorID(ctx context.Context, mentorID int64) ([]*models.StudentMentorConnection, error)
	GetByStudentEmail(ctx context.Context, studentEmail string) ([]*models.StudentMentorConnection, error)
	GetByMentorEmail(ctx context.Context, mentorEmail string) ([]*models.StudentMentorConnection, error)
	GetByStatus(ctx context.Context, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error)
	GetByMentorIDAndStatus(ctx context.Context, mentorID int64, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error)
	GetByStudentIDAndStatus(ctx context.Context, studentID int64, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error)
	UpdateStatus(ctx context.Context, id int64, status models.ConnectionStatus) error
	Delete(ctx context.Context, id int64) error
}
