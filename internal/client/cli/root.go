package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.client.UserName(); u != "" {
		s = u
	}
	if a.isStaff() {
		if s != "" {
			s += " "
		}
		s += "staff"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root prints the banner, checks the server and runs the REPL on stdin.
func (a *App) Root(ctx context.Context) {
	a.println("CAME portal CLI (type 'help' for commands)")

	if err := a.client.Ping(ctx); err != nil {
		a.println("Warning:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
