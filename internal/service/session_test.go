// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/mock"
	"github.com/MKhiriev/tunnel-dash/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller, override string) (*sessionService, *mock.MockSessionRepository) {
	t.Helper()
	repo := mock.NewMockSessionRepository(ctrl)
	svc := NewSessionService(repo, override, logger.Nop()).(*sessionService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return raw
}

func TestSessionService_ResolveToken(t *testing.T) {
	ctx := context.Background()

	t.Run("override is stored and used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestSessionSvc(t, ctrl, "opaque-key")
		repo.EXPECT().SaveToken(ctx, "opaque-key").Return(nil)

		token, err := svc.ResolveToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "opaque-key", token)
	})

	t.Run("override survives save failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestSessionSvc(t, ctrl, "opaque-key")
		repo.EXPECT().SaveToken(ctx, "opaque-key").Return(errors.New("disk full"))

		token, err := svc.ResolveToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "opaque-key", token)
	})

	t.Run("override given as header value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestSessionSvc(t, ctrl, "Bearer opaque-key")
		repo.EXPECT().SaveToken(ctx, "opaque-key").Return(nil)

		token, err := svc.ResolveToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "opaque-key", token)
	})

	t.Run("stored token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestSessionSvc(t, ctrl, "")
		valid := signedToken(t, fixedNow.Add(time.Hour))
		repo.EXPECT().LoadToken(ctx).Return(valid, nil)

		token, err := svc.ResolveToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, valid, token)
	})

	t.Run("no stored session means anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestSessionSvc(t, ctrl, "")
		repo.EXPECT().LoadToken(ctx).Return("", fmt.Errorf("load: %w", store.ErrSessionNotFound))

		token, err := svc.ResolveToken(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestSessionSvc(t, ctrl, "")
		repo.EXPECT().LoadToken(ctx).Return("", store.ErrExecutingQuery)

		_, err := svc.ResolveToken(ctx)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("expired stored token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo := newTestSessionSvc(t, ctrl, "")
		repo.EXPECT().LoadToken(ctx).Return(signedToken(t, fixedNow.Add(-time.Minute)), nil)

		_, err := svc.ResolveToken(ctx)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("expired override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		expired := signedToken(t, fixedNow.Add(-time.Minute))
		svc, repo := newTestSessionSvc(t, ctrl, expired)
		repo.EXPECT().SaveToken(ctx, expired).Return(nil)

		_, err := svc.ResolveToken(ctx)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestSessionService_Discard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl, "")

	repo.EXPECT().ClearToken(ctx).Return(nil)
	assert.NoError(t, svc.Discard(ctx))

	repo.EXPECT().ClearToken(ctx).Return(store.ErrExecutingStatement)
	assert.ErrorIs(t, svc.Discard(ctx), store.ErrExecutingStatement)
}
