package api

import (
	"github.com/findora-hu/findora/app/database"
	"github.com/findora-hu/findora/app/partner"
	"github.com/findora-hu/findora/app/store"
)

type Handler struct {
	runRepo     database.RunRepository
	configCache *partner.ConfigCache
	store       *store.Store
}
