package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/cellar/pkg/adapters/gemini"
	"github.com/aretw0/cellar/pkg/core"
)

// New assembles a ready journal service: storage, loaded store, gateway and
// note builder.
//
//	svc, err := platform.New("./journal", platform.WithLocale("zh"))
func New(ctx context.Context, uri string, opts ...Option) (*core.Service, error) {
	o := applyOptions(opts)

	if o.locale != "" && !core.ValidLocale(o.locale) {
		return nil, fmt.Errorf("%w: invalid locale %q", core.ErrConfiguration, o.locale)
	}

	storage, err := initStorage(ctx, uri, o)
	if err != nil {
		return nil, err
	}

	store := core.NewStore(storage, o.key, o.logger)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}

	gw := o.gateway
	if gw == nil {
		cfg := o.gemini
		if cfg.Logger == nil {
			cfg.Logger = o.logger
		}
		gw = gemini.New(cfg)
	}

	builder := core.NewNoteBuilder(core.PlaceholdersFor(o.locale))
	return core.NewService(store, gw, builder, o.logger), nil
}
