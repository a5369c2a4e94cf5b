package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/cameportal/internal/client/client"
	"github.com/dmitrijs2005/cameportal/internal/client/config"
)

// getSimpleText, getPassword, readFile and writeFile are indirections used
// to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	readFile      = os.ReadFile
	writeFile     = os.WriteFile
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.AdminKey, c.RequestTimeout, c.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.client.Logout(ctx)
		_ = a.client.Close()
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.client.UserName() != ""
}

func (a *App) isStaff() bool {
	return a.config != nil && a.config.AdminKey != ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
