package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		_, _ = printlnFn("Logout failed:", err.Error())
		return err
	}
	_, _ = printlnFn("Signed out. Local journal data is kept.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, ok := a.auth.CurrentUser()
	if !ok {
		_, _ = printlnFn("Not signed in.")
		return nil
	}

	_, _ = printlnFn(fmt.Sprintf("%s <%s> (id %s)", user.Username, user.Email, user.Id))
	if exp, ok := a.creds.TokenExpiry(); ok {
		_, _ = printlnFn(fmt.Sprintf("Access token expires %s", exp.Format(time.RFC1123)))
	}
	return nil
}
