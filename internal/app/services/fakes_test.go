package services

import (
	"context"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/apperrors"
)

// In-memory fakes satisfying the store interfaces. IDs are assigned
// sequentially on create; lookups mirror the repository error behavior.

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.Email == student.Email {
			return apperrors.ErrStudentEmailExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	var all []*models.Student
	for _, s := range f.students {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeMentorStore struct {
	mentors map[int64]*models.Mentor
	nextID  int64
}

func newFakeMentorStore() *fakeMentorStore {
	return &fakeMentorStore{mentors: make(map[int64]*models.Mentor), nextID: 1}
}

func (f *fakeMentorStore) Create(_ context.Context, mentor *models.Mentor) error {
	for _, m := range f.mentors {
		if m.Email == mentor.Email {
			return apperrors.ErrMentorEmailExists
		}
	}
	mentor.ID = f.nextID
	f.nextID++
	f.mentors[mentor.ID] = mentor
	return nil
}

func (f *fakeMentorStore) GetByID(_ context.Context, id int64) (*models.Mentor, error) {
	mentor, ok := f.mentors[id]
	if !ok {
		return nil, apperrors.ErrMentorNotFound
	}
	return mentor, nil
}

func (f *fakeMentorStore) GetByEmail(_ context.Context, email string) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, apperrors.ErrMentorNotFound
}

func (f *fakeMentorStore) GetAll(_ context.Context) ([]*models.Mentor, error) {
	var all []*models.Mentor
	for _, m := range f.mentors {
		all = append(all, m)
	}
	return all, nil
}

func (f *fakeMentorStore) Update(_ context.Context, mentor *models.Mentor) error {
	if _, ok := f.mentors[mentor.ID]; !ok {
		return apperrors.ErrMentorNotFound
	}
	f.mentors[mentor.ID] = mentor
	return nil
}

func (f *fakeMentorStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.mentors[id]; !ok {
		return apperrors.ErrMentorNotFound
	}
	delete(f.mentors, id)
	return nil
}

type mentorSkillKey struct {
	mentorID int64
	skillID  int64
}

type fakeSkillStore struct {
	skills      map[int64]*models.Skill
	attachments map[mentorSkillKey]bool
	nextID      int64
}

func newFakeSkillStore() *fakeSkillStore {
	return &fakeSkillStore{
		skills:      make(map[int64]*models.Skill),
		attachments: make(map[mentorSkillKey]bool),
		nextID:      1,
	}
}

func (f *fakeSkillStore) Create(_ context.Context, skill *models.Skill) error {
	for _, s := range f.skills {
		if s.Name == skill.Name {
			return apperrors.ErrSkillAlreadyExists
		}
	}
	skill.ID = f.nextID
	f.nextID++
	f.skills[skill.ID] = skill
	return nil
}

func (f *fakeSkillStore) GetByID(_ context.Context, id int64) (*models.Skill, error) {
	skill, ok := f.skills[id]
	if !ok {
		return nil, apperrors.ErrSkillNotFound
	}
	return skill, nil
}

func (f *fakeSkillStore) GetByName(_ context.Context, name string) (*models.Skill, error) {
	for _, s := range f.skills {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, apperrors.ErrSkillNotFound
}

func (f *fakeSkillStore) GetAll(_ context.Context) ([]*models.Skill, error) {
	var all []*models.Skill
	for _, s := range f.skills {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeSkillStore) Update(_ context.Context, skill *models.Skill) error {
	if _, ok := f.skills[skill.ID]; !ok {
		return apperrors.ErrSkillNotFound
	}
	f.skills[skill.ID] = skill
	return nil
}

func (f *fakeSkillStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.skills[id]; !ok {
		return apperrors.ErrSkillNotFound
	}
	delete(f.skills, id)
	return nil
}

func (f *fakeSkillStore) SkillsOfMentor(_ context.Context, mentorID int64) ([]*models.Skill, error) {
	var skills []*models.Skill
	for key := range f.attachments {
		if key.mentorID == mentorID {
			skills = append(skills, f.skills[key.skillID])
		}
	}
	return skills, nil
}

func (f *fakeSkillStore) MentorsOfSkill(_ context.Context, skillID int64) ([]int64, error) {
	var mentorIDs []int64
	for key := range f.attachments {
		if key.skillID == skillID {
			mentorIDs = append(mentorIDs, key.mentorID)
		}
	}
	return mentorIDs, nil
}

func (f *fakeSkillStore) CountMentorsOfSkill(_ context.Context, skillID int64) (int64, error) {
	var count int64
	for key := range f.attachments {
		if key.skillID == skillID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSkillStore) Attach(_ context.Context, mentorID, skillID int64) error {
	f.attachments[mentorSkillKey{mentorID, skillID}] = true
	return nil
}

func (f *fakeSkillStore) Detach(_ context.Context, mentorID, skillID int64) (bool, error) {
	key := mentorSkillKey{mentorID, skillID}
	if !f.attachments[key] {
		return false, nil
	}
	delete(f.attachments, key)
	return true, nil
}

type fakeMeetingStore struct {
	meetings map[int64]*models.Meeting
	nextID   int64
}

func newFakeMeetingStore() *fakeMeetingStore {
	return &fakeMeetingStore{meetings: make(map[int64]*models.Meeting), nextID: 1}
}

func (f *fakeMeetingStore) Create(_ context.Context, meeting *models.Meeting) error {
	meeting.ID = f.nextID
	f.nextID++
	f.meetings[meeting.ID] = meeting
	return nil
}

func (f *fakeMeetingStore) GetByID(_ context.Context, id int64) (*models.Meeting, error) {
	meeting, ok := f.meetings[id]
	if !ok {
		return nil, apperrors.ErrMeetingNotFound
	}
	return meeting, nil
}

func (f *fakeMeetingStore) GetAll(_ context.Context) ([]*models.Meeting, error) {
	var all []*models.Meeting
	for _, m := range f.meetings {
		all = append(all, m)
	}
	return all, nil
}

func (f *fakeMeetingStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Meeting, error) {
	var result []*models.Meeting
	for _, m := range f.meetings {
		if m.StudentID == studentID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMeetingStore) GetByMentorID(_ context.Context, mentorID int64) ([]*models.Meeting, error) {
	var result []*models.Meeting
	for _, m := range f.meetings {
		if m.MentorID == mentorID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMeetingStore) GetByStatus(_ context.Context, status models.MeetingStatus) ([]*models.Meeting, error) {
	var result []*models.Meeting
	for _, m := range f.meetings {
		if m.Status == status {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMeetingStore) GetByMentorIDAndStatus(_ context.Context, mentorID int64, status models.MeetingStatus) ([]*models.Meeting, error) {
	var result []*models.Meeting
	for _, m := range f.meetings {
		if m.MentorID == mentorID && m.Status == status {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMeetingStore) GetByStudentIDAndStatusIn(_ context.Context, studentID int64, statuses []models.MeetingStatus) ([]*models.Meeting, error) {
	wanted := make(map[models.MeetingStatus]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	var result []*models.Meeting
	for _, m := range f.meetings {
		if m.StudentID == studentID && wanted[m.Status] {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMeetingStore) UpdateStatus(_ context.Context, id int64, status models.MeetingStatus) error {
	meeting, ok := f.meetings[id]
	if !ok {
		return apperrors.ErrMeetingNotFound
	}
	meeting.Status = status
	return nil
}

func (f *fakeMeetingStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.meetings[id]; !ok {
		return apperrors.ErrMeetingNotFound
	}
	delete(f.meetings, id)
	return nil
}

type fakeConnectionStore struct {
	connections map[int64]*models.StudentMentorConnection
	nextID      int64
}

func newFakeConnectionStore() *fakeConnectionStore {
	return &fakeConnectionStore{connections: make(map[int64]*models.StudentMentorConnection), nextID: 1}
}

func (f *fakeConnectionStore) Create(_ context.Context, connection *models.StudentMentorConnection) error {
	connection.ID = f.nextID
	f.nextID++
	f.connections[connection.ID] = connection
	return nil
}

func (f *fakeConnectionStore) GetByID(_ context.Context, id int64) (*models.StudentMentorConnection, error) {
	connection, ok := f.connections[id]
	if !ok {
		return nil, apperrors.ErrConnectionNotFound
	}
	return connection, nil
}

func (f *fakeConnectionStore) GetByStudentAndMentor(_ context.Context, studentID, mentorID int64) (*models.StudentMentorConnection, error) {
	for _, c := range f.connections {
		if c.StudentID == studentID && c.MentorID == mentorID {
			return c, nil
		}
	}
	return nil, apperrors.ErrConnectionNotFound
}

func (f *fakeConnectionStore) GetAll(_ context.Context) ([]*models.StudentMentorConnection, error) {
	var all []*models.StudentMentorConnection
	for _, c := range f.connections {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeConnectionStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.StudentMentorConnection, error) {
	var result []*models.StudentMentorConnection
	for _, c := range f.connections {
		if c.StudentID == studentID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionStore) GetByMentorID(_ context.Context, mentorID int64) ([]*models.StudentMentorConnection, error) {
	var result []*models.StudentMentorConnection
	for _, c := range f.connections {
		if c.MentorID == mentorID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionStore) GetByStudentEmail(_ context.Context, studentEmail string) ([]*models.StudentMentorConnection, error) {
	var result []*models.StudentMentorConnection
	for _, c := range f.connections {
		if c.StudentEmail == studentEmail {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionStore) GetByMentorEmail(_ context.Context, mentorEmail string) ([]*models.StudentMentorConnection, error) {
	var result []*models.StudentMentorConnection
	for _, c := range f.connections {
		if c.MentorEmail == mentorEmail {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionStore) GetByStatus(_ context.Context, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error) {
	var result []*models.StudentMentorConnection
	for _, c := range f.connections {
		if c.Status == status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionStore) GetByMentorIDAndStatus(_ context.Context, mentorID int64, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error) {
	var result []*models.StudentMentorConnection
	for _, c := range f.connections {
		if c.MentorID == mentorID && c.Status == status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionStore) GetByStudentIDAndStatus(_ context.Context, studentID int64, status models.ConnectionStatus) ([]*models.StudentMentorConnection, error) {
	var result []*models.StudentMentorConnection
	for _, c := range f.connections {
		if c.StudentID == studentID && c.Status == status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionStore) UpdateStatus(_ context.Context, id int64, status models.ConnectionStatus) error {
	connection, ok := f.connections[id]
	if !ok {
		return apperrors.ErrConnectionNotFound
	}
	connection.Status = status
	return nil
}

func (f *fakeConnectionStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.connections[id]; !ok {
		return apperrors.ErrConnectionNotFound
	}
	delete(f.connections, id)
	return nil
}
