package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/support-bot/logging"
)

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Postgres{
		connections: sqlx.NewDb(db, "sqlmock"),
		logger:      logging.Default(),
	}, mock
}

func TestCatalog(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	pricesID := uuid.New()
	refundsID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "question", "answer", "category", "keywords", "emotion_answers"}).
		AddRow(pricesID.String(), "What are the ticket prices?", "Tickets are $12.", "tickets", "ticket price,price", nil).
		AddRow(refundsID.String(), "How do I get a refund?", "Use My Orders.", nil, "refund,cancel", []byte(`{"angry":"Sorry! Use My Orders."}`))

	mock.ExpectQuery("SELECT id, question, answer, category, keywords, emotion_answers").
		WillReturnRows(rows)

	entries, err := postgres.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, pricesID.String(), entries[0].ID)
	assert.Equal(t, "What are the ticket prices?", entries[0].Question)
	assert.Equal(t, "tickets", entries[0].Category)
	assert.Nil(t, entries[0].EmotionAnswers)

	assert.Equal(t, "", entries[1].Category)
	assert.Equal(t, "Sorry! Use My Orders.", entries[1].EmotionAnswers["angry"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogMalformedEmotionAnswers(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	rows := sqlmock.NewRows([]string{"id", "question", "answer", "category", "keywords", "emotion_answers"}).
		AddRow(uuid.NewString(), "Q?", "A.", nil, "", []byte(`{broken`))

	mock.ExpectQuery("SELECT id, question, answer, category, keywords, emotion_answers").
		WillReturnRows(rows)

	// a bad override degrades to the generic answer, it never fails the fetch
	entries, err := postgres.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].EmotionAnswers)
}

func TestInsertConversation(t *testing.T) {
	postgres, mock := newMockPostgres(t)

	mock.ExpectExec("INSERT INTO conversations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := postgres.InsertConversation(context.Background(), Conversation{
		UserID:     "visitor-1",
		Message:    "how do I get a refund",
		Reply:      "Use My Orders.",
		Emotion:    "frustrated",
		Confidence: 0.5,
		MatchScore: 1.0,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}
