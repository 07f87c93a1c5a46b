package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/cellar/pkg/adapters/fs"
	"github.com/aretw0/cellar/pkg/adapters/sqlite"
	"github.com/aretw0/cellar/pkg/core"
)

// Init opens the journal storage at uri and runs its initialization.
// For "fs" the uri is a directory; for "sqlite" it is a directory (holding
// cellar.db), a database file, or ":memory:".
func Init(ctx context.Context, uri string, opts ...Option) (core.Storage, error) {
	return initStorage(ctx, uri, applyOptions(opts))
}

func initStorage(ctx context.Context, uri string, o *options) (core.Storage, error) {
	if o.storage != nil {
		return o.storage, nil
	}

	var (
		storage core.Storage
		err     error
	)
	switch o.adapter {
	case AdapterFS:
		storage = fs.NewStorage(fs.Config{
			Path:         resolvePath(uri, o),
			MustExist:    o.mustExist,
			ReadOnly:     o.readOnly,
			Logger:       o.logger,
			EventBuffer:  o.eventBuffer,
			ErrorHandler: o.errorHandler,
		})
	case AdapterSQLite:
		storage, err = sqlite.Open(sqlite.Config{
			DSN:      sqliteDSN(resolvePath(uri, o)),
			ReadOnly: o.readOnly,
			Logger:   o.logger,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown adapter %q", core.ErrConfiguration, o.adapter)
	}

	if initializer, ok := storage.(core.Initializer); ok {
		if err := initializer.Initialize(ctx); err != nil {
			return nil, err
		}
	}
	return storage, nil
}

// resolvePath applies the dev sandbox rules to a user supplied location.
func resolvePath(uri string, o *options) string {
	if uri == ":memory:" {
		return uri
	}
	bypass := o.readOnly || !o.devSafety
	useTemp := o.forceTemp || (IsDevRun() && !bypass)
	resolved := ResolveJournalPath(uri, useTemp)

	if IsDevRun() {
		switch {
		case o.readOnly:
			o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolved)
		case bypass:
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}
	if useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", uri, "resolved_path", resolved)
	}
	return resolved
}

// sqliteDSN maps a journal directory to its database file. Paths with a file
// extension are used as is.
func sqliteDSN(path string) string {
	if path == ":memory:" || filepath.Ext(path) != "" {
		return path
	}
	return filepath.Join(path, sqlite.DefaultFile)
}
