package platform

import (
	"context"
	"log/slog"

	"github.com/fberthelot/akhet/pkg/adapters/fs"
	"github.com/fberthelot/akhet/pkg/core"
)

// New wires a dashboard service on top of a vault directory.
//
//	svc, err := akhet.New("~/.akhet", akhet.WithAutoSeed(true))
//
// The vault is created when missing (unless WithMustExist), seeded with the
// yearly goal catalog when empty (unless WithAutoSeed(false)), and loaded
// into memory before the service is returned.
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	store := o.store
	if store == nil {
		store = fs.NewStore(fs.Config{
			Path:         path,
			Prefix:       o.prefix,
			AutoInit:     o.autoInit,
			MustExist:    o.mustExist,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
		})
	}

	ctx := context.Background()
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}

	service := core.NewService(store, o.logger)
	service.SetAutoSeed(o.autoSeed)
	if o.onChange != nil {
		service.SetOnChange(o.onChange)
	}
	service.Load(ctx)

	return service, nil
}
