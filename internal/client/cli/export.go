package cli

import (
	"context"
	"fmt"
	"os"
)

// exportFileName is the default target when no path is given.
const exportFileName = "journal-export.json"

// Export writes all local entries to a JSON file.
func (a *App) Export(ctx context.Context, args []string) error {
	path := exportFileName
	if len(args) > 0 {
		path = args[0]
	}

	data, err := a.journal.Export()
	if err != nil {
		_, _ = printlnFn("Could not export entries:", err.Error())
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		_, _ = printlnFn("Could not write export file:", err.Error())
		return err
	}

	_, _ = printlnFn(fmt.Sprintf("Exported %d entries to %s", len(a.journal.List()), path))
	return nil
}
