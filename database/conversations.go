package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConversationWriter records each utterance/reply pair for analytics.
// The chat core neither reads nor depends on this history.
type ConversationWriter interface {
	InsertConversation(ctx context.Context, conv Conversation) (uuid.UUID, error)
}

// Conversation is one chat turn: what the visitor asked, what the bot
// replied, and the match/emotion metadata behind the reply.
type Conversation struct {
	UUID       uuid.UUID  `db:"id"`
	UserID     string     `db:"user_id"`
	Message    string     `db:"message"`
	Reply      string     `db:"reply"`
	Emotion    string     `db:"emotion"`
	Confidence float64    `db:"confidence"`
	FAQID      *uuid.UUID `db:"faq_id"`
	MatchScore float64    `db:"match_score"`
	Time       time.Time  `db:"created_at"`
}

// InsertConversation inserts a chat turn and returns its ID if successful.
func (p *Postgres) InsertConversation(ctx context.Context, conv Conversation) (uuid.UUID, error) {
	p.logger.Debug("generating UUID for conversation", "user", conv.UserID)
	ID, err := uuid.NewUUID()
	if err != nil {
		p.logger.Error("error generating UUID", "error", err.Error())
		return uuid.UUID{}, fmt.Errorf("error generating UUID: %w", err)
	}
	conv.UUID = ID
	if conv.Time.IsZero() {
		conv.Time = time.Now()
	}

	query := `INSERT INTO conversations (id, user_id, message, reply, emotion, confidence, faq_id, match_score, created_at)
		VALUES (:id, :user_id, :message, :reply, :emotion, :confidence, :faq_id, :match_score, :created_at)`
	p.logger.Debug("inserting conversation into database", "conversationID", ID, "user", conv.UserID)

	_, err = p.connections.NamedExecContext(ctx, query, conv)
	if err != nil {
		p.logger.Error("error inserting conversation into database", "error", err.Error(), "conversationID", ID)
		return uuid.UUID{}, fmt.Errorf("error inserting conversation: %w", err)
	}

	p.logger.Debug("conversation inserted successfully", "conversationID", ID)
	return ID, nil
}
