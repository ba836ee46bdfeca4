// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/tunnel-dash/internal/adapter"
	"github.com/MKhiriev/tunnel-dash/internal/config"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/store"
)

type ClientServices struct {
	SyncClient        SyncClient
	SessionService    SessionService
	PreferenceService PreferenceService
}

func NewClientServices(
	storages *store.ClientStorages,
	metrics adapter.MetricsAdapter,
	dialer adapter.PushDialer,
	listener Listener,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	return &ClientServices{
		SyncClient:        NewSyncClient(metrics, dialer, listener, cfg.Sync, log),
		SessionService:    NewSessionService(storages.Sessions, cfg.Adapter.Token, log),
		PreferenceService: NewPreferenceService(storages.Preferences, log),
	}
}
