package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/edusentry/backend/apps/api/echo"
	"github.com/edusentry/backend/core"
	"github.com/edusentry/backend/core/academic"
	"github.com/edusentry/backend/core/alert"
	"github.com/edusentry/backend/core/audit"
	"github.com/edusentry/backend/core/feedback"
	"github.com/edusentry/backend/core/user"
	emailsvc "github.com/edusentry/backend/services/email"
	narrativesvc "github.com/edusentry/backend/services/narrative"
	inmemdb "github.com/edusentry/backend/storage/kvstore/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testApp struct {
	app  Server
	conf *core.Config

	usrRepo user.Repository
	acaRepo academic.Repository

	usrSvc      *user.Service
	academicSvc *academic.Service
	alertSvc    *alert.Service
	auditSvc    *audit.Service
	feedbackSvc *feedback.Service

	narrativeSvc *narrativesvc.DummyService
}

// newTestApp wires a fresh server on in-memory repositories.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	emailsvc.ResetSentMessages()

	conf := core.NewTestConfig()
	conf.Debug = false

	db := inmemdb.Open()
	ta := &testApp{
		conf:         conf,
		usrRepo:      inmemdb.NewUserRepository(db),
		acaRepo:      inmemdb.NewAcademicRepository(db),
		narrativeSvc: narrativesvc.NewFailingService(errors.New("generator offline")),
	}
	logger := core.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	ta.alertSvc = alert.NewService(inmemdb.NewAlertRepository(db))
	ta.auditSvc = audit.NewService(inmemdb.NewAuditRepository(db))
	ta.feedbackSvc = feedback.NewService(inmemdb.NewFeedbackRepository(db))
	ta.usrSvc = user.NewService(ta.usrRepo, ta.alertSvc, mailSvc, conf)
	ta.academicSvc = academic.NewService(ta.acaRepo, ta.alertSvc, ta.narrativeSvc, logger)

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	ta.app = NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
		UserSvc:        ta.usrSvc,
		AcademicSvc:    ta.academicSvc,
		AlertSvc:       ta.alertSvc,
		AuditSvc:       ta.auditSvc,
		FeedbackSvc:    ta.feedbackSvc,
	})
	return ta
}

func (ta *testApp) getToken(t *testing.T, usr user.User) string {
	t.Helper()
	token, err := GenerateToken(ta.conf, GetUserClaims(ta.conf, usr))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func (ta *testApp) seedUser(t *testing.T, email string) user.User {
	t.Helper()
	usr, err := ta.usrSvc.GetByEmail(email)
	if err != nil {
		t.Fatalf("seedUser(%s): %v", email, err)
	}
	return usr
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decodeBody(): %v; body = %s", err, rec.Body.String())
	}
}
