// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/tunnel-dash/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. Only authentication failures change identity; everything else is a
// recoverable transport error and is passed through.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return err
}

func isAuthError(err error) bool {
	return errors.Is(err, ErrAuthentication)
}
