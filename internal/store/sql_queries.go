// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	preferencesTable = "preferences"
	sessionsTable    = "sessions"

	// currentSessionID is the single row holding the active session.
	currentSessionID = 1
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func getPreferenceQuery(key string) (string, []any, error) {
	return builder.
		Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func setPreferenceQuery(key, value string, at time.Time) (string, []any, error) {
	return builder.
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func saveTokenQuery(token string, at time.Time) (string, []any, error) {
	return builder.
		Insert(sessionsTable).
		Columns("id", "token", "saved_at").
		Values(currentSessionID, token, at).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at").
		ToSql()
}

func loadTokenQuery() (string, []any, error) {
	return builder.
		Select("token").
		From(sessionsTable).
		Where(sq.Eq{"id": currentSessionID}).
		ToSql()
}

func clearTokenQuery() (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.Eq{"id": currentSessionID}).
		ToSql()
}
