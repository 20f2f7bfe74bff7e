package testutil

import (
	"testing"
	"time"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/academic"
	"github.com/edusentry/backend/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, pwd, role, status string,
	registeredAt ...time.Time,
) user.User {
	tstamp := time.Now().UTC()
	if len(registeredAt) > 0 {
		tstamp = registeredAt[0].UTC()
	}
	usr := user.User{
		ID:               core.NewID(),
		Name:             name,
		Email:            email,
		Role:             role,
		Status:           status,
		RegistrationDate: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.UpsertUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func NewSubmission(studentID, studentName string, attendance, internalMarks, assignmentScore float64) academic.NewSubmission {
	return academic.NewSubmission{
		StudentID:       studentID,
		StudentName:     studentName,
		Attendance:      attendance,
		InternalMarks:   internalMarks,
		AssignmentScore: assignmentScore,
	}
}

func CreateAcademicData(
	t *testing.T,
	repo academic.Repository,
	studentID, studentName string,
	attendance, internalMarks, assignmentScore float64,
	submittedAt ...time.Time,
) academic.AcademicData {
	tstamp := time.Now().UTC()
	if len(submittedAt) > 0 {
		tstamp = submittedAt[0].UTC()
	}
	data, err := repo.CreateAcademicData(academic.AcademicData{
		ID:              core.NewID(),
		StudentID:       studentID,
		StudentName:     studentName,
		Attendance:      attendance,
		InternalMarks:   internalMarks,
		AssignmentScore: assignmentScore,
		Timestamp:       tstamp,
	})
	if err != nil {
		t.Fatalf("CreateAcademicData() failed: %v", err)
	}
	return data
}
