package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, full_name)
    VALUES ($1, $2, $3)
    RETURNING id, email, password_hash, full_name, is_active, subscription_tier, memory_count, monthly_memory_count, last_login_at, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, full_name, is_active, subscription_tier, memory_count, monthly_memory_count, last_login_at, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, full_name, is_active, subscription_tier, memory_count, monthly_memory_count, last_login_at, created_at
    FROM users
    WHERE id = $1;`

	updateLastLogin = `UPDATE users
    SET last_login_at = NOW()
    WHERE id = $1;`

	resetMonthlyCounts = `UPDATE users
    SET monthly_memory_count = 0
    WHERE monthly_memory_count <> 0;`

	createAPIKey = `INSERT INTO api_keys (user_id, key_hash, key_prefix, key_suffix, name, expires_at, rate_limit_per_minute, rate_limit_per_hour)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, user_id, key_hash, key_prefix, key_suffix, name, expires_at, rate_limit_per_minute, rate_limit_per_hour, is_active, last_used_at, created_at;`

	findAPIKeyByHash = `SELECT id, user_id, key_hash, key_prefix, key_suffix, name, expires_at, rate_limit_per_minute, rate_limit_per_hour, is_active, last_used_at, created_at
    FROM api_keys
    WHERE key_hash = $1;`

	touchAPIKeyLastUsed = `UPDATE api_keys
    SET last_used_at = NOW()
    WHERE id = $1;`

	listAPIKeysByUser = `SELECT id, user_id, key_hash, key_prefix, key_suffix, name, expires_at, rate_limit_per_minute, rate_limit_per_hour, is_active, last_used_at, created_at
    FROM api_keys
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	createMemory = `INSERT INTO memories (user_id, content, title, tags, metadata)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, content, title, tags, metadata, created_at, updated_at;`

	incrementMemoryCounts = `UPDATE users
    SET memory_count = memory_count + 1, monthly_memory_count = monthly_memory_count + 1
    WHERE id = $1;`

	insertUsageLog = `INSERT INTO usage_logs (user_id, endpoint, method, status_code, response_time_ms, ip_address, user_agent)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`
)

// memoryColumns is the canonical column list of the memories table, shared by
// the static queries above and the dynamic search builder below.
var memoryColumns = []string{"id", "user_id", "content", "title", "tags", "metadata", "created_at", "updated_at"}

// buildSearchQuery dynamically builds the user-scoped memory search SELECT.
//
// The user_id predicate is always present: row scoping is enforced in the
// query itself, never left to the caller. A non-empty query adds a
// case-insensitive substring match on content.
func buildSearchQuery(userID, query string, limit uint64) (string, []any, error) {
	builder := sq.Select(memoryColumns...).
		From("memories").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	if query != "" {
		builder = builder.Where(sq.ILike{"content": "%" + query + "%"})
	}

	return builder.ToSql()
}
