// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-model-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrSessionExpired),
		errors.Is(err, adapter.ErrUnauthorized):
		return errors.Join(ErrNotAuthenticated, err)

	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return errors.Join(ErrServerUnavailable, err)
	}

	return err
}

// isServerReachable reports whether err proves the server answered at all:
// any mapped HTTP sentinel means a response arrived, while a bare transport
// error means the host could not be reached.
func isServerReachable(err error) bool {
	if err == nil {
		return true
	}

	for _, sentinel := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrSessionExpired,
		adapter.ErrForbidden,
		adapter.ErrNotFound,
		adapter.ErrConflict,
		adapter.ErrBadGateway,
		adapter.ErrInternalServerError,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
