package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coladapo/puo-memo-platform/internal/logger"
	"github.com/coladapo/puo-memo-platform/models"
)

// memoryRepository is the PostgreSQL-backed implementation of
// [MemoryRepository]. Tags and metadata are stored as JSONB and converted to
// native Go values at this boundary.
type memoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemoryRepository constructs a [MemoryRepository] backed by the provided
// database connection and logger.
func NewMemoryRepository(db *DB, logger *logger.Logger) MemoryRepository {
	logger.Debug().Msg("creating memory repository")
	return &memoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMemory persists a new memory and increments the owner's memory_count
// and monthly_memory_count in the same transaction, so the stored counters
// never drift from the number of rows actually written.
func (r *memoryRepository) CreateMemory(ctx context.Context, memory models.Memory) (models.Memory, error) {
	log := logger.FromContext(ctx)

	tagsJSON, metadataJSON, err := encodeMemoryJSON(memory)
	if err != nil {
		log.Err(err).Str("func", "*memoryRepository.CreateMemory").Msg("error encoding memory fields")
		return models.Memory{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*memoryRepository.CreateMemory").Msg("error beginning transaction")
		return models.Memory{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createMemory, memory.UserID, memory.Content, memory.Title, tagsJSON, metadataJSON)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*memoryRepository.CreateMemory").Msg("error: row is nil")
		return models.Memory{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanMemory(row)
	if err != nil {
		log.Err(err).Str("func", "*memoryRepository.CreateMemory").Msg("error: scanning error")
		return models.Memory{}, fmt.Errorf("%w: %w", ErrMemoryNotSaved, err)
	}

	if _, err := tx.ExecContext(ctx, incrementMemoryCounts, memory.UserID); err != nil {
		log.Err(err).Str("func", "*memoryRepository.CreateMemory").Msg("error incrementing memory counts")
		return models.Memory{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*memoryRepository.CreateMemory").Msg("error committing transaction")
		return models.Memory{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return saved, nil
}

// SearchMemories returns up to limit memories of the given user whose content
// matches the query, newest first. The SELECT is assembled by
// [buildSearchQuery]; an empty query matches everything the user owns.
func (r *memoryRepository) SearchMemories(ctx context.Context, userID, query string, limit uint64) ([]models.Memory, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSearchQuery(userID, query, limit)
	if err != nil {
		log.Err(err).Str("func", "*memoryRepository.SearchMemories").Msg("error building search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*memoryRepository.SearchMemories").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	memories := make([]models.Memory, 0)
	for rows.Next() {
		memory, err := scanMemory(rows)
		if err != nil {
			log.Err(err).Str("func", "*memoryRepository.SearchMemories").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		memories = append(memories, memory)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*memoryRepository.SearchMemories").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return memories, nil
}

// encodeMemoryJSON serialises tags and metadata for the JSONB columns. Nil
// values are written as empty collections so reads never return JSON null.
func encodeMemoryJSON(memory models.Memory) (tagsJSON, metadataJSON []byte, err error) {
	tags := memory.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err = json.Marshal(tags)
	if err != nil {
		return nil, nil, fmt.Errorf("marshalling tags: %w", err)
	}

	metadata := memory.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err = json.Marshal(metadata)
	if err != nil {
		return nil, nil, fmt.Errorf("marshalling metadata: %w", err)
	}

	return tagsJSON, metadataJSON, nil
}

// scanMemory decodes a memories row into a [models.Memory], unmarshalling the
// JSONB columns.
func scanMemory(row rowScanner) (models.Memory, error) {
	var (
		memory       models.Memory
		tagsJSON     []byte
		metadataJSON []byte
	)

	err := row.Scan(
		&memory.ID,
		&memory.UserID,
		&memory.Content,
		&memory.Title,
		&tagsJSON,
		&metadataJSON,
		&memory.CreatedAt,
		&memory.UpdatedAt,
	)
	if err != nil {
		return models.Memory{}, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &memory.Tags); err != nil {
			return models.Memory{}, fmt.Errorf("unmarshalling tags: %w", err)
		}
	}
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &memory.Metadata); err != nil {
			return models.Memory{}, fmt.Errorf("unmarshalling metadata: %w", err)
		}
	}

	return memory, nil
}
