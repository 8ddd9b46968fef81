package handler

import (
	"github.com/amalanberkah/internal/realtime"
	"github.com/amalanberkah/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	progress     *service.ProgressService
	autosave     *service.Autosaver
	partnerships *service.PartnershipService
	messages     *service.MessageService
	analytics    *service.AnalyticsService
	settings     *service.AppSettingService
	hub          *realtime.Hub
}

// NewAPI constructs the handler set with shared services.
func NewAPI(gdb *gorm.DB, autosave *service.Autosaver, hub *realtime.Hub) *API {
	progress := service.NewProgressService(gdb)
	partnerships := service.NewPartnershipService(gdb, progress, hub)

	return &API{
		db:           gdb,
		progress:     progress,
		autosave:     autosave,
		partnerships: partnerships,
		messages:     service.NewMessageService(gdb, partnerships, hub),
		analytics:    service.NewAnalyticsService(gdb),
		settings:     service.NewAppSettingService(gdb),
		hub:          hub,
	}
}
