package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/auth"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

type fakeResumes struct {
	rows map[uuid.UUID]*domain.StoredResume
}

func (f *fakeResumes) Create(_ context.Context, userEmail string, doc model.Resume) (*domain.StoredResume, error) {
	id := uuid.New()
	doc.ID = id.String()
	row := &domain.StoredResume{ID: id, UserEmail: userEmail, Document: doc.Normalize()}
	f.rows[id] = row
	return row, nil
}

func (f *fakeResumes) Update(_ context.Context, id uuid.UUID, userEmail string, doc model.Resume) (*domain.StoredResume, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if row.UserEmail != userEmail {
		return nil, repository.ErrForbidden
	}
	doc.ID = id.String()
	row.Document = doc.Normalize()
	return row, nil
}

func (f *fakeResumes) GetByID(_ context.Context, id uuid.UUID) (*domain.StoredResume, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return row, nil
}

func (f *fakeResumes) ListByOwner(_ context.Context, userEmail string) ([]model.Resume, error) {
	out := []model.Resume{}
	for _, row := range f.rows {
		if row.UserEmail == userEmail {
			out = append(out, row.Document)
		}
	}
	return out, nil
}

func (f *fakeResumes) Delete(_ context.Context, id uuid.UUID, userEmail string) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeAI struct{}

func (fakeAI) ParseResumeFromBinary(context.Context, []byte, string) model.Resume {
	r := model.NewEmptyResume()
	r.PersonalInfo.FullName = "Parsed Person"
	return r
}

func (fakeAI) CheckATSScore(context.Context, model.Resume) *ai.ATSReport {
	return &ai.ATSReport{Score: 88, Rating: "Excellent", Sections: map[string]ai.SectionScore{}}
}

func (fakeAI) OptimizeSummary(context.Context, string, []string) string { return "A summary." }

func (fakeAI) GenerateCoverLetter(context.Context, model.Resume, string, string, string) string {
	return "Dear hiring manager,"
}

func (fakeAI) OptimizeResumeForATS(_ context.Context, r model.Resume) model.Resume { return r }

type fakeMailer struct {
	sent int
	fail bool
}

func (f *fakeMailer) SendResume(context.Context, string, string, model.Resume) error {
	if f.fail {
		return errors.New("ses rejected")
	}
	f.sent++
	return nil
}

type testEnv struct {
	app     *fiber.App
	tokens  *auth.TokenManager
	users   *fakeUsers
	resumes *fakeResumes
	mailer  *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		tokens:  auth.NewTokenManager("test-secret", time.Hour),
		users:   &fakeUsers{byEmail: map[string]*domain.User{}},
		resumes: &fakeResumes{rows: map[uuid.UUID]*domain.StoredResume{}},
		mailer:  &fakeMailer{},
	}
	h := NewHandler(env.users, env.resumes, env.tokens, fakeAI{}, env.mailer, nil)
	env.app = fiber.New()
	RegisterRoutes(env.app, h, NewAuthMiddleware(env.tokens))
	return env
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := e.tokens.Generate(email)
	require.NoError(t, err)
	return tok
}

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPost, "/api/auth/register", "",
		map[string]string{"fullName": "Ada Lovelace", "email": "ada@example.com", "password": "secret"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// duplicate registration conflicts
	resp = env.request(t, http.MethodPost, "/api/auth/register", "",
		map[string]string{"fullName": "Ada", "email": "ada@example.com", "password": "secret"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "ada@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
		User  struct {
			FullName string `json:"fullName"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, resp, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "Ada Lovelace", login.User.FullName)

	// the issued token works on a protected route
	resp = env.request(t, http.MethodGet, "/api/resumes/", login.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.request(t, http.MethodPost, "/api/auth/register", "",
		map[string]string{"email": "ada@example.com", "password": "secret"})

	resp := env.request(t, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "ada@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/auth/login", "",
		map[string]string{"email": "nobody@example.com", "password": "secret"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/resumes/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/resumes/", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestResumeCRUD(t *testing.T) {
	env := newTestEnv(t)
	tok := env.tokenFor(t, "ada@example.com")

	doc := model.SampleResume()
	resp := env.request(t, http.MethodPost, "/api/resumes/", tok, doc)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created model.Resume
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	_, err := uuid.Parse(created.ID)
	require.NoError(t, err, "stored documents carry the server-assigned uuid")

	// update
	created.PersonalInfo.FullName = "Ada King"
	resp = env.request(t, http.MethodPut, "/api/resumes/"+created.ID, tok, created)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// read back
	resp = env.request(t, http.MethodGet, "/api/resumes/"+created.ID, tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.Resume
	decodeBody(t, resp, &got)
	assert.Equal(t, "Ada King", got.PersonalInfo.FullName)

	// list
	resp = env.request(t, http.MethodGet, "/api/resumes/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []model.Resume
	decodeBody(t, resp, &list)
	assert.Len(t, list, 1)

	// delete
	resp = env.request(t, http.MethodDelete, "/api/resumes/"+created.ID, tok, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.request(t, http.MethodGet, "/api/resumes/"+created.ID, tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateTimestampIDIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	tok := env.tokenFor(t, "ada@example.com")

	resp := env.request(t, http.MethodPut, "/api/resumes/1719244800000", tok, model.SampleResume())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateForeignResumeIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	adaTok := env.tokenFor(t, "ada@example.com")
	graceTok := env.tokenFor(t, "grace@example.com")

	resp := env.request(t, http.MethodPost, "/api/resumes/", adaTok, model.SampleResume())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created model.Resume
	decodeBody(t, resp, &created)

	resp = env.request(t, http.MethodPut, "/api/resumes/"+created.ID, graceTok, created)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "resume belongs to another account", body["message"])
}

func TestAIEndpoints(t *testing.T) {
	env := newTestEnv(t)
	tok := env.tokenFor(t, "ada@example.com")

	resp := env.request(t, http.MethodPost, "/api/ai/score", tok, model.SampleResume())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rep ai.ATSReport
	decodeBody(t, resp, &rep)
	assert.Equal(t, 88.0, rep.Score)

	resp = env.request(t, http.MethodPost, "/api/ai/summary", tok,
		map[string]interface{}{"jobTitle": "Engineer", "skills": []string{"Go"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sum map[string]string
	decodeBody(t, resp, &sum)
	assert.Equal(t, "A summary.", sum["summary"])

	resp = env.request(t, http.MethodPost, "/api/ai/cover-letter", tok,
		map[string]interface{}{"resume": model.SampleResume(), "jobTitle": "Engineer", "company": "Acme"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var letter map[string]string
	decodeBody(t, resp, &letter)
	assert.Equal(t, "Dear hiring manager,", letter["coverLetter"])
}

func TestParseResumeMultipart(t *testing.T) {
	env := newTestEnv(t)
	tok := env.tokenFor(t, "ada@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/ai/parse", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc model.Resume
	decodeBody(t, resp, &doc)
	assert.Equal(t, "Parsed Person", doc.PersonalInfo.FullName)

	// missing file part
	resp = env.request(t, http.MethodPost, "/api/ai/parse", tok, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendResumeEmail(t *testing.T) {
	env := newTestEnv(t)
	tok := env.tokenFor(t, "ada@example.com")

	resp := env.request(t, http.MethodPost, "/api/email/send", tok,
		map[string]interface{}{"to": "friend@example.com", "subject": "My resume", "resume": model.SampleResume()})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, env.mailer.sent)

	// no recipient
	resp = env.request(t, http.MethodPost, "/api/email/send", tok,
		map[string]interface{}{"subject": "My resume"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendResumeWithoutMailerConfigured(t *testing.T) {
	env := newTestEnv(t)
	h := NewHandler(env.users, env.resumes, env.tokens, fakeAI{}, nil, nil)
	app := fiber.New()
	RegisterRoutes(app, h, NewAuthMiddleware(env.tokens))

	req := httptest.NewRequest(http.MethodPost, "/api/email/send", bytes.NewReader([]byte(`{"to":"x@example.com"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+env.tokenFor(t, "ada@example.com"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
