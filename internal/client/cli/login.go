package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"emojournal/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	if a.config.AuthAPIBase == "" {
		_, _ = printlnFn("No auth backend configured; running local-only.")
		return nil
	}

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.SignIn(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			_, _ = printlnFn("Server unavailable, local data remains accessible.")
		} else {
			_, _ = printlnFn("Login unsuccessful:", err.Error())
		}
		return err
	}

	_, _ = printlnFn(fmt.Sprintf("Welcome back, %s!", user.Username))
	return nil
}
