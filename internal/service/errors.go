package service

import "errors"

var (
	ErrSyncInFlight     = errors.New("sync already in flight")
	ErrNotAuthenticated = errors.New("client is not authenticated")

	ErrServerUnavailable = errors.New("server unavailable")
	ErrRequestLinkFailed = errors.New("failed to request login link")
	ErrVerifyLinkFailed  = errors.New("failed to verify login link")
)
