package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/cameportal/internal/client/models"
	"github.com/dmitrijs2005/cameportal/internal/timex"
)

func printReport(a *App, r *models.ComplianceReport) {
	a.printf("Entity: %s\n", r.Entity.Name)
	if r.Registered {
		a.printf("Registered, last login: %s\n", orDash(timex.FormatDateTime(r.LastLogin)))
	} else {
		a.println("Not registered")
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOCUMENT\tSTATUS\tEXPIRY\tLATEST UPLOAD")
	for _, d := range r.Documents {
		latest := "-"
		if d.Latest != nil {
			latest = fmt.Sprintf("%s (%s)", d.Latest.FileName, timex.FormatDateTime(&d.Latest.UploadedAt))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Label, d.Status, orDash(timex.FormatDate(d.Expiry)), latest)
	}
	_ = tw.Flush()
}

func printUsers(a *App, users []models.UserSummary) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tREGISTERED\tLAST LOGIN\tEMAIL\tPHONE")
	for _, u := range users {
		created := u.CreatedAt
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			u.Username,
			timex.FormatDateTime(&created),
			orDash(timex.FormatDateTime(u.LastLogin)),
			orDash(u.Contact.Email),
			orDash(u.Contact.Phone),
		)
	}
	_ = tw.Flush()
	a.printf("%d users\n", len(users))
}

func printEntities(a *App, resp *models.EntityList) {
	if resp.Warning != "" {
		a.println("Warning:", resp.Warning)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tCITY\tPROVINCE\tESTATUTO\tIGJ\tAFIP\tROSTER")
	for _, e := range resp.Entities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name, orDash(e.City), orDash(e.Province),
			orDash(e.Estatuto), orDash(e.IGJ), orDash(e.AFIP), orDash(e.RosterStatus))
	}
	_ = tw.Flush()
	a.printf("%d entities\n", len(resp.Entities))
	for _, d := range resp.Skipped {
		a.printf("Skipped line %d: %s\n", d.Line, d.Reason)
	}
}
