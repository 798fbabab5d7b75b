package api

import (
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/credentials"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/service"
)

type App interface {
	Logger() internal.Logger
	Registry() *service.Registry
	Creds() credentials.Store
}

type application struct {
	logger   internal.Logger
	registry *service.Registry
	creds    credentials.Store
}

func NewApp(logger internal.Logger, registry *service.Registry, creds credentials.Store) App {
	return &application{logger: logger, registry: registry, creds: creds}
}

func (a *application) Logger() internal.Logger     { return a.logger }
func (a *application) Registry() *service.Registry { return a.registry }
func (a *application) Creds() credentials.Store    { return a.creds }
