package tests

import (
	"net/http"
	"testing"

	"github.com/edusentry/backend/core/alert"
	"github.com/edusentry/backend/core/feedback"
)

func Test_alertApi(t *testing.T) {
	ta := newTestApp(t)
	admin := ta.seedUser(t, "admin@faculty.com")
	student := ta.seedUser(t, "john@student.com")
	adminToken := ta.getToken(t, admin)

	n1, err := ta.alertSvc.Add(alert.NewNotification{Title: "one", Message: "m", Type: alert.TypeSystem})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err = ta.alertSvc.Add(alert.NewNotification{Title: "two", Message: "m", Type: alert.TypeSystem}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	t.Run("admin required", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/notifications", ta.getToken(t, student))
		ta.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marshallObj(t, httpErr{Error: "permission denied"})}, rec)
	})

	t.Run("query newest first", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/notifications", adminToken)
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var notifs []alert.Notification
		decodeBody(t, rec, &notifs)
		if len(notifs) != 2 {
			t.Fatalf("got %d notifications, want 2", len(notifs))
		}
		if notifs[0].Title != "two" {
			t.Errorf("notifs[0].Title = %q, want %q", notifs[0].Title, "two")
		}
	})

	t.Run("mark one read", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/notifications/"+n1.ID+"/read", adminToken)
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
		}

		// unknown ids are ignored
		req, rec = newAuthRequest(http.MethodPost, "/v1/notifications/nope/read", adminToken)
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %v; body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("mark all read", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/notifications/read-all", adminToken)
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
		}
		notifs, err := ta.alertSvc.QueryAll()
		if err != nil {
			t.Fatalf("QueryAll() failed: %v", err)
		}
		for _, n := range notifs {
			if !n.Read {
				t.Errorf("%q not marked read", n.Title)
			}
		}
	})
}

func Test_feedbackApi(t *testing.T) {
	ta := newTestApp(t)
	admin := ta.seedUser(t, "admin@faculty.com")
	student := ta.seedUser(t, "john@student.com")
	studentToken := ta.getToken(t, student)

	t.Run("auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/feedback", marshallObj(t, map[string]string{"message": "hi"}))
		ta.app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	t.Run("blank message", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/feedback", studentToken, marshallObj(t, map[string]string{"message": "  "}))
		ta.app.ServeHTTP(rec, req)
		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"message": "feedback message cannot be empty"}),
		}
		checkCodeAndData(t, tt, rec)
	})

	t.Run("create and query", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/feedback", studentToken,
			marshallObj(t, map[string]string{"message": "More office hours please"}))
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var fb feedback.Feedback
		decodeBody(t, rec, &fb)
		if fb.StudentID != student.ID || fb.StudentName != student.Name {
			t.Errorf("author not recorded: %+v", fb)
		}

		// listing is for the faculty only
		req, rec = newAuthRequest(http.MethodGet, "/v1/feedback", studentToken)
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("code = %v; body = %s", rec.Code, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/feedback", ta.getToken(t, admin))
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body = %s", rec.Code, rec.Body.String())
		}
		var all []feedback.Feedback
		decodeBody(t, rec, &all)
		if len(all) != 1 {
			t.Errorf("got %d feedback, want 1", len(all))
		}
	})

	t.Run("audit log listing", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/audit-logs", studentToken)
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("code = %v; body = %s", rec.Code, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/audit-logs", ta.getToken(t, admin))
		ta.app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("code = %v; body = %s", rec.Code, rec.Body.String())
		}
	})
}
