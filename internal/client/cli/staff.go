package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cameportal/internal/common"
)

func search(args []string) string {
	return strings.Join(args, " ")
}

func (a *App) Users(ctx context.Context, args []string) error {
	users, err := a.client.Users(ctx, search(args))
	if err != nil {
		return err
	}
	printUsers(a, users)
	return nil
}

func (a *App) Stats(ctx context.Context, args []string) error {
	st, err := a.client.Stats(ctx)
	if err != nil {
		return err
	}
	a.printf("Total users:            %d\n", st.Total)
	a.printf("New in last 30 days:    %d\n", st.NewLast30Days)
	a.printf("Active in last 30 days: %d\n", st.ActiveLast30Days)
	if len(st.RegistrationsPerMonth) > 0 {
		a.println("Registrations per month:")
		for _, m := range st.RegistrationsPerMonth {
			a.printf("  %s  %d\n", m.Month, m.Count)
		}
	}
	return nil
}

// Export writes the user list as CSV.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: export <file.csv> [search]", errUsage)
	}
	t, err := a.client.Export(ctx, search(args[1:]))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}

	if err := writeFile(args[0], buf.Bytes(), 0o600); err != nil {
		return err
	}
	a.printf("Exported %d users to %s\n", len(t.Rows), args[0])
	return nil
}

// ResetPassword sets a new password for an entity after confirmation. The
// entity's open sessions end.
func (a *App) ResetPassword(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: resetpw <user>", errUsage)
	}
	user := search(args)

	password, err := GetNewPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !Confirm(a.reader, fmt.Sprintf("Reset the password of %s?", user), a.out) {
		a.println("Cancelled")
		return nil
	}

	if err := a.client.ResetPassword(ctx, user, password); err != nil {
		return err
	}
	a.printf("Password of %s reset\n", user)
	return nil
}

// DeleteUser removes an entity's credentials after confirmation. Roster
// data and uploaded files are kept.
func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: deleteuser <user>", errUsage)
	}
	user := search(args)

	if !Confirm(a.reader, fmt.Sprintf("Delete the account of %s? This cannot be undone.", user), a.out) {
		a.println("Cancelled")
		return nil
	}

	if err := a.client.DeleteUser(ctx, user); err != nil {
		return err
	}
	a.printf("User %s deleted\n", user)
	return nil
}

func (a *App) Entities(ctx context.Context, args []string) error {
	resp, err := a.client.Entities(ctx, search(args))
	if err != nil {
		return err
	}
	printEntities(a, resp)
	return nil
}

func (a *App) Compliance(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: compliance <entity>", errUsage)
	}
	r, err := a.client.Compliance(ctx, search(args))
	if err != nil {
		return err
	}
	printReport(a, r)
	if r.Contact != nil {
		printContact(a, *r.Contact)
	}
	return nil
}

func (a *App) UploadLog(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: uploadlog <entity>", errUsage)
	}
	lines, err := a.client.UploadLog(ctx, search(args))
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		a.println("No uploads")
		return nil
	}
	for _, l := range lines {
		a.println(l)
	}
	return nil
}
