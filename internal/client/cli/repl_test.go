package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	staff    bool
	err      error

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isStaff() bool    { return f.staff }

func (f *fakeExec) Register(ctx context.Context, args []string) error {
	return f.record("register", args)
}
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(ctx context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) Profile(ctx context.Context, args []string) error {
	return f.record("profile", args)
}
func (f *fakeExec) EditProfile(ctx context.Context, args []string) error {
	return f.record("editprofile", args)
}
func (f *fakeExec) Upload(ctx context.Context, args []string) error {
	return f.record("upload", args)
}
func (f *fakeExec) Documents(ctx context.Context, args []string) error {
	return f.record("docs", args)
}
func (f *fakeExec) Download(ctx context.Context, args []string) error {
	return f.record("download", args)
}
func (f *fakeExec) Users(ctx context.Context, args []string) error {
	return f.record("users", args)
}
func (f *fakeExec) Stats(ctx context.Context, args []string) error {
	return f.record("stats", args)
}
func (f *fakeExec) Export(ctx context.Context, args []string) error {
	return f.record("export", args)
}
func (f *fakeExec) ResetPassword(ctx context.Context, args []string) error {
	return f.record("resetpw", args)
}
func (f *fakeExec) DeleteUser(ctx context.Context, args []string) error {
	return f.record("deleteuser", args)
}
func (f *fakeExec) Entities(ctx context.Context, args []string) error {
	return f.record("entities", args)
}
func (f *fakeExec) Compliance(ctx context.Context, args []string) error {
	return f.record("compliance", args)
}
func (f *fakeExec) UploadLog(ctx context.Context, args []string) error {
	return f.record("uploadlog", args)
}

func runWith(f *fakeExec, input string) string {
	var out bytes.Buffer
	runREPL(context.Background(), f, func() string { return "" }, rdr(input), &out)
	return out.String()
}

func TestREPL_DispatchesMemberCommands(t *testing.T) {
	f := &fakeExec{}
	runWith(f, "login Club Norte\n\nprofile\nupload afip c.pdf\ndocs\ndownload igj\neditprofile\nlogout\nexit\n")

	assert.Equal(t, []string{"login", "profile", "upload", "docs", "download", "editprofile", "logout"}, f.calls)
	assert.Equal(t, []string{"Club", "Norte"}, f.args[0])
	assert.Equal(t, []string{"afip", "c.pdf"}, f.args[2])
}

func TestREPL_StaffCommandsNeedKey(t *testing.T) {
	f := &fakeExec{}
	out := runWith(f, "users\ndeleteuser ClubNorte\n")
	assert.Empty(t, f.calls)
	assert.Contains(t, out, "staff command")

	f = &fakeExec{staff: true}
	runWith(f, "users norte\nstats\nexport u.csv\nresetpw ClubNorte\ndeleteuser ClubNorte\nentities\ncompliance ClubNorte\nuploadlog ClubNorte\n")
	assert.Equal(t, []string{"users", "stats", "export", "resetpw", "deleteuser", "entities", "compliance", "uploadlog"}, f.calls)
}

func TestREPL_HelpDependsOnState(t *testing.T) {
	out := runWith(&fakeExec{}, "help\n")
	assert.Contains(t, out, "register, login")
	assert.NotContains(t, out, "Staff commands")

	out = runWith(&fakeExec{loggedIn: true, staff: true}, "help\n")
	assert.Contains(t, out, "upload <type> <file>")
	assert.Contains(t, out, "Staff commands")
}

func TestREPL_PrintsErrorsAndContinues(t *testing.T) {
	f := &fakeExec{err: common.ErrorInvalidCredentials}
	out := runWith(f, "login x\nregister\n")
	assert.Equal(t, []string{"login", "register"}, f.calls)
	assert.Equal(t, 2, strings.Count(out, "Error: incorrect password"))

	f = &fakeExec{err: errors.New("disk full")}
	out = runWith(f, "docs\n")
	assert.Contains(t, out, "Error: disk full")
}

func TestREPL_UnknownAndExit(t *testing.T) {
	f := &fakeExec{}
	out := runWith(f, "frobnicate\nquit\nlogin\n")
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Bye!")
	assert.Empty(t, f.calls)
}

func TestREPL_StopsOnEOF(t *testing.T) {
	f := &fakeExec{}
	runWith(f, "docs")
	assert.Equal(t, []string{"docs"}, f.calls)
}
