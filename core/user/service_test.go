package user_test

import (
	"strings"
	"testing"

	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/alert"
	"github.com/edusentry/backend/core/user"
	emailsvc "github.com/edusentry/backend/services/email"
	inmemdb "github.com/edusentry/backend/storage/kvstore/inmem"
	"github.com/edusentry/backend/tests"
)

func setup(t *testing.T) (*user.Service, *alert.Service, user.Repository) {
	t.Helper()
	emailsvc.ResetSentMessages()

	conf := core.NewTestConfig()
	db := inmemdb.Open()
	repo := inmemdb.NewUserRepository(db)
	alertSvc := alert.NewService(inmemdb.NewAlertRepository(db))
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	return user.NewService(repo, alertSvc, mailSvc, conf), alertSvc, repo
}

func TestService_QueryAll(t *testing.T) {
	svc, _, repo := setup(t)

	// empty store still exposes the built-in roster
	users, err := svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("got %d users, want 3", len(users))
	}

	// registered users are appended after the roster
	extra := testutil.CreateUser(t, repo, "Extra", "extra@test.cd", "", user.RoleStudent, user.StatusPending)
	users, err = svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("got %d users, want 4", len(users))
	}
	if users[3].ID != extra.ID {
		t.Errorf("users[3].ID = %q, want %q", users[3].ID, extra.ID)
	}

	// a stored record colliding with a built-in email loses to the built-in
	testutil.CreateUser(t, repo, "Impostor", "John@Student.com", "", user.RoleAdmin, user.StatusApproved)
	users, err = svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("got %d users, want 4 (impostor shadowed)", len(users))
	}
	john, err := svc.GetByEmail("john@student.com")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	if john.Name != "John Doe" || !john.IsStudent() {
		t.Errorf("built-in record lost the collision: %+v", john)
	}
}

func TestService_Save_seedIsImmutable(t *testing.T) {
	svc, _, repo := setup(t)

	john, err := svc.GetByEmail("john@student.com")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	john.Name = "Johnny Hacked"
	if err := svc.Save(john); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// the write was dropped
	stored, err := repo.QueryAllUsers()
	if err != nil {
		t.Fatalf("QueryAllUsers() failed: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("got %d stored users, want 0", len(stored))
	}
	john, _ = svc.GetByEmail("john@student.com")
	if john.Name != "John Doe" {
		t.Errorf("Name = %q, want %q", john.Name, "John Doe")
	}
}

func TestService_Register(t *testing.T) {
	svc, alertSvc, _ := setup(t)

	usr, err := svc.Register(user.NewUser{
		Name:            "New Student",
		Email:           "new@test.cd",
		RegisterNo:      "REG-2025-009",
		Department:      "Physics",
		Password:        "secretpwd",
		PasswordConfirm: "secretpwd",
	})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if !usr.IsStudent() {
		t.Errorf("Role = %q, want %q", usr.Role, user.RoleStudent)
	}
	if !usr.IsPending() {
		t.Errorf("Status = %q, want %q", usr.Status, user.StatusPending)
	}
	if usr.ID == "" || usr.RegistrationDate.IsZero() {
		t.Errorf("identity not assigned: %+v", usr)
	}
	if err := usr.CheckPassword("secretpwd"); err != nil {
		t.Errorf("CheckPassword() failed: %v", err)
	}

	notifs, err := alertSvc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(notifs) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifs))
	}
	n := notifs[0]
	if n.Type != alert.TypeRegistration || n.LinkTab != alert.TabRegistrations {
		t.Errorf("notification = %+v", n)
	}
	if n.Title != "New Access Request" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.Message != "New Student has applied for student credentials." {
		t.Errorf("Message = %q", n.Message)
	}
}

func TestService_SetStatus(t *testing.T) {
	t.Run("approve sends mail", func(t *testing.T) {
		svc, _, repo := setup(t)
		usr := testutil.CreateUser(t, repo, "Pending", "pending@test.cd", "", user.RoleStudent, user.StatusPending)

		got, err := svc.SetStatus(usr.ID, user.StatusApproved)
		if err != nil {
			t.Fatalf("SetStatus() failed: %v", err)
		}
		if !got.IsApproved() {
			t.Errorf("Status = %q, want %q", got.Status, user.StatusApproved)
		}
		if len(emailsvc.SentMessages) != 1 {
			t.Fatalf("got %d mails, want 1", len(emailsvc.SentMessages))
		}
		msg := emailsvc.SentMessages[0]
		if msg.To[0].Address != "pending@test.cd" {
			t.Errorf("To = %v", msg.To)
		}
		if msg.Subject != "Registration APPROVED" {
			t.Errorf("Subject = %q", msg.Subject)
		}
		if !strings.Contains(msg.Body, "has been approved") {
			t.Errorf("Body = %q", msg.Body)
		}
	})

	t.Run("resolved statuses are terminal", func(t *testing.T) {
		svc, _, repo := setup(t)
		usr := testutil.CreateUser(t, repo, "Pending", "pending@test.cd", "", user.RoleStudent, user.StatusPending)

		if _, err := svc.SetStatus(usr.ID, user.StatusRejected); err != nil {
			t.Fatalf("SetStatus() failed: %v", err)
		}
		if _, err := svc.SetStatus(usr.ID, user.StatusApproved); err != user.ErrStatusResolved {
			t.Errorf("SetStatus() error = %v, want %v", err, user.ErrStatusResolved)
		}
	})

	t.Run("only resolved statuses are accepted", func(t *testing.T) {
		svc, _, repo := setup(t)
		usr := testutil.CreateUser(t, repo, "Pending", "pending@test.cd", "", user.RoleStudent, user.StatusPending)

		if _, err := svc.SetStatus(usr.ID, user.StatusPending); err == nil {
			t.Error("SetStatus(PENDING) did not fail")
		}
		if _, err := svc.SetStatus(usr.ID, "BANANA"); err == nil {
			t.Error("SetStatus(BANANA) did not fail")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := setup(t)
		if _, err := svc.SetStatus("nope", user.StatusApproved); err != user.ErrNotFound {
			t.Errorf("SetStatus() error = %v, want %v", err, user.ErrNotFound)
		}
	})
}

func TestService_Authenticate(t *testing.T) {
	svc, _, repo := setup(t)
	testutil.CreateUser(t, repo, "Approved", "ok@test.cd", "secretpwd", user.RoleStudent, user.StatusApproved)
	testutil.CreateUser(t, repo, "Pending", "pending@test.cd", "secretpwd", user.RoleStudent, user.StatusPending)
	testutil.CreateUser(t, repo, "Rejected", "rejected@test.cd", "secretpwd", user.RoleStudent, user.StatusRejected)

	tests := []struct {
		name, email, pwd, portal string
		wantErr                  error
	}{
		{name: "ok", email: "ok@test.cd", pwd: "secretpwd", portal: user.RoleStudent},
		{name: "seed admin ok", email: "admin@faculty.com", pwd: "admin123", portal: user.RoleAdmin},
		{name: "unknown email", email: "ghost@test.cd", pwd: "secretpwd", portal: user.RoleStudent, wantErr: user.ErrInvalidCredentials},
		{name: "bad password", email: "ok@test.cd", pwd: "nope", portal: user.RoleStudent, wantErr: user.ErrInvalidCredentials},
		{name: "wrong portal", email: "ok@test.cd", pwd: "secretpwd", portal: user.RoleAdmin, wantErr: user.ErrWrongPortal},
		{name: "pending account", email: "pending@test.cd", pwd: "secretpwd", portal: user.RoleStudent, wantErr: user.ErrAccountPending},
		{name: "rejected account", email: "rejected@test.cd", pwd: "secretpwd", portal: user.RoleStudent, wantErr: user.ErrAccountRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Authenticate(tt.email, tt.pwd, tt.portal); err != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsSeedEmail(t *testing.T) {
	if !user.IsSeedEmail("JOHN@STUDENT.COM") {
		t.Error("IsSeedEmail() is not case-insensitive")
	}
	if user.IsSeedEmail("random@test.cd") {
		t.Error("IsSeedEmail() matched a non-seed email")
	}
}
