package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isStaff() bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Documents(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error

	Users(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	ResetPassword(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	Entities(ctx context.Context, args []string) error
	Compliance(ctx context.Context, args []string) error
	UploadLog(ctx context.Context, args []string) error
}

type command struct {
	run   func(execIface, context.Context, []string) error
	staff bool
}

var commands = map[string]command{
	"register":    {run: execIface.Register},
	"login":       {run: execIface.Login},
	"logout":      {run: execIface.Logout},
	"profile":     {run: execIface.Profile},
	"editprofile": {run: execIface.EditProfile},
	"upload":      {run: execIface.Upload},
	"docs":        {run: execIface.Documents},
	"download":    {run: execIface.Download},

	"users":      {run: execIface.Users, staff: true},
	"stats":      {run: execIface.Stats, staff: true},
	"export":     {run: execIface.Export, staff: true},
	"resetpw":    {run: execIface.ResetPassword, staff: true},
	"deleteuser": {run: execIface.DeleteUser, staff: true},
	"entities":   {run: execIface.Entities, staff: true},
	"compliance": {run: execIface.Compliance, staff: true},
	"uploadlog":  {run: execIface.UploadLog, staff: true},
}

var errStaffOnly = errors.New("staff command: start the client with an admin key (-k)")

func helpText(a execIface) string {
	var b strings.Builder
	if a.isLoggedIn() {
		b.WriteString("Member commands: profile, editprofile, upload <type> <file>, docs, download <type> [dest], logout\n")
	} else {
		b.WriteString("Member commands: register, login\n")
	}
	if a.isStaff() {
		b.WriteString("Staff commands: users [search], stats, export <file.csv> [search], resetpw <user>, " +
			"deleteuser <user>, entities [search], compliance <entity>, uploadlog <entity>\n")
	}
	b.WriteString("Document types: estatuto, igj, afip, comision_directiva\n")
	b.WriteString("Other: help, exit")
	return b.String()
}

// runREPL reads commands line by line from reader and dispatches them to
// a. Errors returned by handlers are printed and the loop continues. The
// loop exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "came %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText(a))
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		c, ok := commands[cmd]
		if !ok {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}
		if c.staff && !a.isStaff() {
			fmt.Fprintln(w, "Error:", errStaffOnly)
			continue
		}
		if err := c.run(a, ctx, args); err != nil {
			fmt.Fprintln(w, "Error:", describe(err))
		}
	}
}
