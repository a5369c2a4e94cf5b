package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/cameportal/internal/client/client"
	"github.com/dmitrijs2005/cameportal/internal/client/models"
	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/timex"
)

// nameOrPrompt joins args into an entity name, prompting when there are
// none.
func (a *App) nameOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// Register creates credentials for an entity listed in the roster.
func (a *App) Register(ctx context.Context, args []string) error {
	userName, err := a.nameOrPrompt(args, "Enter entity name")
	if err != nil {
		return err
	}

	password, err := GetNewPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, userName, password); err != nil {
		return err
	}

	a.println("Registered. You can now log in.")
	return nil
}

// Login authenticates as an entity. A previous session is ended first.
func (a *App) Login(ctx context.Context, args []string) error {
	userName, err := a.nameOrPrompt(args, "Enter entity name")
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if a.isLoggedIn() {
		_ = a.client.Logout(ctx)
	}

	if err := a.client.Login(ctx, userName, password); err != nil {
		return err
	}

	a.printf("Logged in as %s\n", a.client.UserName())
	return nil
}

func (a *App) Logout(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return client.ErrUnauthorized
	}
	err := a.client.Logout(ctx)
	a.println("Logged out")
	return err
}

func (a *App) Profile(ctx context.Context, args []string) error {
	p, err := a.client.Profile(ctx)
	if err != nil {
		return err
	}
	a.printf("Entity:      %s\n", p.Username)
	a.printf("Registered:  %s\n", timex.FormatDateTime(&p.CreatedAt))
	a.printf("Last login:  %s\n", orDash(timex.FormatDateTime(p.LastLogin)))
	printContact(a, p.Contact)
	return nil
}

func printContact(a *App, c models.Contact) {
	a.printf("Founded:     %s\n", orDash(timex.FormatDate(c.FoundingDate)))
	a.printf("Email:       %s\n", orDash(c.Email))
	a.printf("Phone:       %s\n", orDash(c.Phone))
	a.printf("Facebook:    %s\n", orDash(c.Facebook))
	a.printf("Twitter:     %s\n", orDash(c.Twitter))
	a.printf("Instagram:   %s\n", orDash(c.Instagram))
	a.printf("LinkedIn:    %s\n", orDash(c.LinkedIn))
}

// editField prompts with the current value. Empty input keeps it and "-"
// clears it.
func (a *App) editField(label, current string) (string, error) {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (Enter keeps, - clears)", label, current), a.out)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return current, nil
	case "-":
		return "", nil
	default:
		return v, nil
	}
}

// EditProfile replaces the whole contact group.
func (a *App) EditProfile(ctx context.Context, args []string) error {
	p, err := a.client.Profile(ctx)
	if err != nil {
		return err
	}
	c := p.Contact

	founded, err := a.editField("Founding date dd/mm/yyyy", timex.FormatDate(c.FoundingDate))
	if err != nil {
		return err
	}
	c.FoundingDate = nil
	if founded != "" {
		if c.FoundingDate = timex.ParseDayMonthYear(founded); c.FoundingDate == nil {
			return fmt.Errorf("%w: invalid date %q", common.ErrorValidation, founded)
		}
	}

	fields := []struct {
		label string
		value *string
	}{
		{"Email", &c.Email},
		{"Phone", &c.Phone},
		{"Facebook", &c.Facebook},
		{"Twitter", &c.Twitter},
		{"Instagram", &c.Instagram},
		{"LinkedIn", &c.LinkedIn},
	}
	for _, f := range fields {
		if *f.value, err = a.editField(f.label, *f.value); err != nil {
			return err
		}
	}

	if err := a.client.UpdateProfile(ctx, c); err != nil {
		return err
	}
	a.println("Profile updated")
	return nil
}

// Upload sends a file as a new version of a document.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: upload <type> <file>", errUsage)
	}
	data, err := readFile(args[1])
	if err != nil {
		return err
	}
	if a.config != nil && a.config.MaxUploadBytes > 0 && int64(len(data)) > a.config.MaxUploadBytes {
		return fmt.Errorf("%w: file exceeds %d bytes", common.ErrorValidation, a.config.MaxUploadBytes)
	}
	doc, err := a.client.Upload(ctx, args[0], filepath.Base(args[1]), data)
	if err != nil {
		return err
	}
	a.printf("Uploaded %s (%d bytes). The status changes once the association updates the roster.\n", doc.FileName, doc.Size)
	return nil
}

// Documents shows status, expiry and latest upload of every document.
func (a *App) Documents(ctx context.Context, args []string) error {
	r, err := a.client.Documents(ctx)
	if err != nil {
		return err
	}
	printReport(a, r)
	return nil
}

// Download saves the latest version of a document to dest, or under its
// stored name in the current directory.
func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: download <type> [dest]", errUsage)
	}
	doc, data, err := a.client.Download(ctx, args[0])
	if err != nil {
		return err
	}
	dest := doc.FileName
	if len(args) > 1 {
		dest = args[1]
	}
	if err := writeFile(dest, data, 0o600); err != nil {
		return err
	}
	a.printf("Saved %s (%d bytes)\n", dest, len(data))
	return nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
