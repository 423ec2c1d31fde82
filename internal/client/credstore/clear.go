package credstore

import (
	"context"
	"database/sql"

	"emojournal/internal/client/repositories/kv"
	"emojournal/internal/common"
	"emojournal/internal/dbx"
)

var sessionKeys = []string{
	common.KeyAccessToken,
	common.KeyRefreshToken,
	common.KeyLegacyToken,
	common.KeyUser,
}

func dbxClear(ctx context.Context, db *sql.DB) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		for _, key := range sessionKeys {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
