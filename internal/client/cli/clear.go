package cli

import (
	"context"
	"os"
	"strings"
)

// Clear wipes the local journal cache after confirmation. Entries already
// persisted on the backend come back on the next list.
func (a *App) Clear(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Remove all locally cached entries? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "yes" {
		_, _ = printlnFn("Aborted.")
		return nil
	}

	if err := a.journal.ClearAll(ctx); err != nil {
		_, _ = printlnFn("Could not clear local entries:", err.Error())
		return err
	}

	_, _ = printlnFn("Local journal cleared.")
	return nil
}
