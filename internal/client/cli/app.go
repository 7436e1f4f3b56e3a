// Package cli implements the interactive command-line client for the login
// service: register, login, whoami, update and delete against a running
// server.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/malusolero/login-service/internal/client/api"
	"github.com/malusolero/login-service/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	client *api.Client
	reader *bufio.Reader
	out    io.Writer

	// token is kept for the lifetime of the CLI session after a login.
	token string
}

func NewApp(client *api.Client) *App {
	return &App{
		client: client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run dispatches a single command. Unknown commands return an error listing
// the supported ones.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "update":
		return a.Update(ctx)
	case "delete":
		return a.Delete(ctx)
	default:
		return fmt.Errorf("unknown command %q (expected register, login, whoami, update or delete)", command)
	}
}

func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("username %q is already taken", username)
		}
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	info, err := a.client.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrorNotFound) {
			return errors.New("wrong username or password")
		}
		return err
	}

	a.token = info.Token
	fmt.Fprintf(a.out, "Token (valid for %d seconds):\n%s\n", info.Duration, info.Token)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	token, err := a.sessionToken()
	if err != nil {
		return err
	}

	username, err := a.client.WhoAmI(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return errors.New("not authenticated")
		}
		return err
	}

	fmt.Fprintln(a.out, username)
	return nil
}

func (a *App) Update(ctx context.Context) error {
	token, err := a.sessionToken()
	if err != nil {
		return err
	}

	username, err := getSimpleText(a.reader, "Enter new username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.client.Update(ctx, token, username, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	token, err := a.sessionToken()
	if err != nil {
		return err
	}

	if err := a.client.Delete(ctx, token); err != nil {
		return err
	}

	a.token = ""
	fmt.Fprintln(a.out, "Account removed")
	return nil
}

// sessionToken returns the token from the current session or, failing that,
// from the TOKEN environment variable so commands can be scripted.
func (a *App) sessionToken() (string, error) {
	if a.token != "" {
		return a.token, nil
	}
	if token := os.Getenv("TOKEN"); token != "" {
		return token, nil
	}
	return "", errors.New("no token: run login first or set TOKEN")
}
