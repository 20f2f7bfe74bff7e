package kvstore

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/alert"
	"github.com/edusentry/backend/core/user"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(core.NewTestConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_userRepository(t *testing.T) {
	repo := NewUserRepository(openDB(t))

	usr := user.User{
		ID:               core.NewID(),
		Name:             "Stored Student",
		Email:            "stored@test.cd",
		Role:             user.RoleStudent,
		Status:           user.StatusPending,
		RegisterNo:       "REG-2025-011",
		Department:       "Physics",
		RegistrationDate: time.Now().UTC(),
	}
	require.NoError(t, usr.SetPassword("secretpwd"))

	_, err := repo.UpsertUser(usr)
	require.NoError(t, err)

	users, err := repo.QueryAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)

	got := users[0]
	assert.Equal(t, usr.Email, got.Email)
	assert.Equal(t, usr.RegisterNo, got.RegisterNo)
	// the password hash must survive the round trip
	assert.NoError(t, got.CheckPassword("secretpwd"))

	// upsert replaces by id
	usr.Status = user.StatusApproved
	_, err = repo.UpsertUser(usr)
	require.NoError(t, err)

	users, err = repo.QueryAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, user.StatusApproved, users[0].Status)
}

func Test_alertRepository(t *testing.T) {
	repo := NewAlertRepository(openDB(t))

	for i := 0; i < alert.MaxNotifications+3; i++ {
		_, err := repo.CreateNotification(alert.Notification{
			ID:        core.NewID(),
			Title:     fmt.Sprintf("n%d", i),
			Message:   "m",
			Type:      alert.TypeSystem,
			Timestamp: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	notifs, err := repo.QueryAllNotifications()
	require.NoError(t, err)
	require.Len(t, notifs, alert.MaxNotifications)
	// newest first; the oldest entries were evicted
	assert.Equal(t, fmt.Sprintf("n%d", alert.MaxNotifications+2), notifs[0].Title)
	assert.Equal(t, "n3", notifs[len(notifs)-1].Title)

	require.NoError(t, repo.MarkNotificationRead(notifs[0].ID))
	// unknown ids are ignored
	require.NoError(t, repo.MarkNotificationRead("nope"))

	notifs, err = repo.QueryAllNotifications()
	require.NoError(t, err)
	assert.True(t, notifs[0].Read)
	assert.False(t, notifs[1].Read)

	require.NoError(t, repo.MarkAllNotificationsRead())
	notifs, err = repo.QueryAllNotifications()
	require.NoError(t, err)
	for _, n := range notifs {
		assert.True(t, n.Read, n.Title)
	}
}
