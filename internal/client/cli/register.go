package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	if a.config.AuthAPIBase == "" {
		_, _ = printlnFn("No auth backend configured; running local-only.")
		return nil
	}

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.SignUp(ctx, username, email, password)
	if err != nil {
		_, _ = printlnFn("Registration unsuccessful:", err.Error())
		return err
	}

	_, _ = printlnFn(fmt.Sprintf("Account created, welcome %s!", user.Username))
	return nil
}
