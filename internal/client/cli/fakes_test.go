package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/dmitrijs2005/cameportal/internal/client/config"
	"github.com/dmitrijs2005/cameportal/internal/client/models"
)

type uploadCall struct {
	Type     string
	FileName string
	Content  []byte
}

type fakeClient struct {
	user string

	loginErr    error
	loginCalls  []string
	loginPass   []string
	registered  map[string]string
	logouts     int
	profile     models.Profile
	updated     *models.Contact
	uploaded    []uploadCall
	report      *models.ComplianceReport
	download    []byte
	downloadDoc models.Document
	users       []models.UserSummary
	stats       *models.UserStats
	export      *models.Table
	resets      map[string]string
	deleted     []string
	entities    *models.EntityList
	logLines    []string
	lastSearch  string
}

func (f *fakeClient) Close() error                   { return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return nil }

func (f *fakeClient) Register(ctx context.Context, username string, password []byte) error {
	if f.registered == nil {
		f.registered = map[string]string{}
	}
	f.registered[username] = string(password)
	return nil
}

func (f *fakeClient) Login(ctx context.Context, username string, password []byte) error {
	f.loginCalls = append(f.loginCalls, username)
	f.loginPass = append(f.loginPass, string(password))
	if f.loginErr != nil {
		return f.loginErr
	}
	f.user = username
	return nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.logouts++
	f.user = ""
	return nil
}

func (f *fakeClient) UserName() string { return f.user }

func (f *fakeClient) Profile(ctx context.Context) (*models.Profile, error) {
	p := f.profile
	return &p, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, contact models.Contact) error {
	f.updated = &contact
	return nil
}

func (f *fakeClient) Upload(ctx context.Context, docType, fileName string, content []byte) (*models.Document, error) {
	f.uploaded = append(f.uploaded, uploadCall{Type: docType, FileName: fileName, Content: content})
	return &models.Document{Type: docType, FileName: docType + "_20240506_143000.pdf", Size: int64(len(content))}, nil
}

func (f *fakeClient) Documents(ctx context.Context) (*models.ComplianceReport, error) {
	return f.report, nil
}

func (f *fakeClient) Download(ctx context.Context, docType string) (*models.Document, []byte, error) {
	d := f.downloadDoc
	return &d, f.download, nil
}

func (f *fakeClient) Users(ctx context.Context, search string) ([]models.UserSummary, error) {
	f.lastSearch = search
	return f.users, nil
}

func (f *fakeClient) Stats(ctx context.Context) (*models.UserStats, error) {
	return f.stats, nil
}

func (f *fakeClient) Export(ctx context.Context, search string) (*models.Table, error) {
	f.lastSearch = search
	return f.export, nil
}

func (f *fakeClient) ResetPassword(ctx context.Context, username string, password []byte) error {
	if f.resets == nil {
		f.resets = map[string]string{}
	}
	f.resets[username] = string(password)
	return nil
}

func (f *fakeClient) DeleteUser(ctx context.Context, username string) error {
	f.deleted = append(f.deleted, username)
	return nil
}

func (f *fakeClient) Entities(ctx context.Context, search string) (*models.EntityList, error) {
	f.lastSearch = search
	return f.entities, nil
}

func (f *fakeClient) Compliance(ctx context.Context, entity string) (*models.ComplianceReport, error) {
	f.lastSearch = entity
	return f.report, nil
}

func (f *fakeClient) UploadLog(ctx context.Context, entity string) ([]string, error) {
	f.lastSearch = entity
	return f.logLines, nil
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(c *fakeClient, adminKey string, lines ...string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config: &config.Config{AdminKey: adminKey},
		client: c,
		reader: readerFromLines(lines...),
		out:    out,
	}, out
}

// stubPasswords replaces the password prompt with a fixed sequence.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(w io.Writer, prompt string) ([]byte, error) {
		if len(pws) == 0 {
			return nil, io.EOF
		}
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
}

type memFiles struct {
	files map[string][]byte
}

func stubFiles(t *testing.T, files map[string][]byte) *memFiles {
	t.Helper()
	m := &memFiles{files: files}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	origRead, origWrite := readFile, writeFile
	t.Cleanup(func() { readFile, writeFile = origRead, origWrite })
	readFile = func(name string) ([]byte, error) {
		b, ok := m.files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return b, nil
	}
	writeFile = func(name string, data []byte, perm os.FileMode) error {
		m.files[name] = append([]byte(nil), data...)
		return nil
	}
	return m
}
