package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cinetix/support-bot/faq"
)

// StoredEntry is an FAQ entry row, including the admin-facing fields the
// matcher doesn't care about.
type StoredEntry struct {
	ID             uuid.UUID
	Question       string
	Answer         string
	Category       sql.NullString
	Keywords       string
	EmotionAnswers map[string]string
	IsActive       bool
	Position       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Catalog returns the active FAQ entries in position order, satisfying
// faq.CatalogSource. Position follows the config file's entry order
// because the exact-match phase is first-entry-wins.
func (p *Postgres) Catalog(ctx context.Context) ([]faq.Entry, error) {
	query := `
		SELECT id, question, answer, category, keywords, emotion_answers
		FROM faq_entries
		WHERE is_active = true
		ORDER BY position, created_at
	`

	rows, err := p.connections.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query FAQ catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []faq.Entry
	for rows.Next() {
		var (
			id             uuid.UUID
			entry          faq.Entry
			category       sql.NullString
			emotionAnswers []byte
		)
		if err := rows.Scan(&id, &entry.Question, &entry.Answer, &category, &entry.Keywords, &emotionAnswers); err != nil {
			return nil, fmt.Errorf("failed to scan FAQ entry: %w", err)
		}
		entry.ID = id.String()
		if category.Valid {
			entry.Category = category.String
		}
		if len(emotionAnswers) > 0 {
			if err := json.Unmarshal(emotionAnswers, &entry.EmotionAnswers); err != nil {
				// Malformed overrides degrade to the generic answer
				// rather than failing the whole catalog fetch.
				p.logger.Error("skipping malformed emotion_answers", "faqID", entry.ID, "error", err.Error())
				entry.EmotionAnswers = nil
			}
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListEntries returns all FAQ entries, active or not, for the admin CLI.
func (p *Postgres) ListEntries(ctx context.Context) ([]StoredEntry, error) {
	query := `
		SELECT id, question, answer, category, keywords, emotion_answers,
		       is_active, position, created_at, updated_at
		FROM faq_entries
		ORDER BY position, created_at
	`

	rows, err := p.connections.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query FAQ entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []StoredEntry
	for rows.Next() {
		var e StoredEntry
		var emotionAnswers []byte
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Category, &e.Keywords, &emotionAnswers,
			&e.IsActive, &e.Position, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan FAQ entry: %w", err)
		}
		if len(emotionAnswers) > 0 {
			if err := json.Unmarshal(emotionAnswers, &e.EmotionAnswers); err != nil {
				p.logger.Error("skipping malformed emotion_answers", "faqID", e.ID, "error", err.Error())
			}
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// SyncResult contains statistics about a sync operation
type SyncResult struct {
	EntriesProcessed int
	EntriesCreated   int
	EntriesUpdated   int
	EntriesDeleted   int
	Errors           []error
	Duration         time.Duration
}

// Sync synchronizes FAQ entries from a config file to the database.
// This performs a full sync: deletes entries not in config, updates
// existing, creates new. Positions follow config order.
func (p *Postgres) Sync(ctx context.Context, config *faq.Config) (*SyncResult, error) {
	start := time.Now()
	result := &SyncResult{}

	p.logger.Info("starting FAQ sync", "entryCount", len(config.Entries))

	tx, err := p.connections.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existingEntries, err := p.getExistingEntries(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to get existing entries: %w", err)
	}

	processedQuestions := make(map[string]bool)

	for position, entryConfig := range config.Entries {
		result.EntriesProcessed++
		processedQuestions[entryConfig.Question] = true

		existingID, exists := existingEntries[entryConfig.Question]
		if exists {
			if err := p.updateEntry(ctx, tx, existingID, entryConfig, position); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("failed to update '%s': %w", entryConfig.Question, err))
				p.logger.Error("failed to update entry", "question", entryConfig.Question, "error", err.Error())
				continue
			}
			result.EntriesUpdated++
			p.logger.Debug("updated FAQ entry", "question", entryConfig.Question)
		} else {
			if err := p.createEntry(ctx, tx, entryConfig, position); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("failed to create '%s': %w", entryConfig.Question, err))
				p.logger.Error("failed to create entry", "question", entryConfig.Question, "error", err.Error())
				continue
			}
			result.EntriesCreated++
			p.logger.Debug("created FAQ entry", "question", entryConfig.Question)
		}
	}

	for question, id := range existingEntries {
		if !processedQuestions[question] {
			if _, err := tx.ExecContext(ctx, `DELETE FROM faq_entries WHERE id = $1`, id); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("failed to delete '%s': %w", question, err))
				p.logger.Error("failed to delete entry", "question", question, "error", err.Error())
				continue
			}
			result.EntriesDeleted++
			p.logger.Debug("deleted FAQ entry", "question", question)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.Duration = time.Since(start)

	p.logger.Info("FAQ sync completed",
		"processed", result.EntriesProcessed,
		"created", result.EntriesCreated,
		"updated", result.EntriesUpdated,
		"deleted", result.EntriesDeleted,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)

	return result, nil
}

// getExistingEntries returns a map of question -> id for all existing FAQ entries
func (p *Postgres) getExistingEntries(ctx context.Context, tx *sqlx.Tx) (map[string]uuid.UUID, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, question FROM faq_entries`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	entries := make(map[string]uuid.UUID)
	for rows.Next() {
		var id uuid.UUID
		var question string
		if err := rows.Scan(&id, &question); err != nil {
			return nil, err
		}
		entries[question] = id
	}

	return entries, rows.Err()
}

func (p *Postgres) createEntry(ctx context.Context, tx *sqlx.Tx, config faq.EntryConfig, position int) error {
	emotionAnswers, err := marshalEmotionAnswers(config.EmotionAnswers)
	if err != nil {
		return err
	}

	var category *string
	if config.Category != "" {
		category = &config.Category
	}

	query := `
		INSERT INTO faq_entries (question, answer, category, keywords, emotion_answers, is_active, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, query,
		config.Question,
		config.Answer,
		category,
		config.Keywords,
		emotionAnswers,
		config.IsEntryActive(),
		position,
	)
	return err
}

func (p *Postgres) updateEntry(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, config faq.EntryConfig, position int) error {
	emotionAnswers, err := marshalEmotionAnswers(config.EmotionAnswers)
	if err != nil {
		return err
	}

	var category *string
	if config.Category != "" {
		category = &config.Category
	}

	query := `
		UPDATE faq_entries
		SET answer = $2,
		    category = $3,
		    keywords = $4,
		    emotion_answers = $5,
		    is_active = $6,
		    position = $7,
		    updated_at = NOW()
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, query,
		id,
		config.Answer,
		category,
		config.Keywords,
		emotionAnswers,
		config.IsEntryActive(),
		position,
	)
	return err
}

func marshalEmotionAnswers(answers map[string]string) ([]byte, error) {
	if len(answers) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal emotion answers: %w", err)
	}
	return data, nil
}
