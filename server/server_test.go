package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/support-bot/database"
	"github.com/cinetix/support-bot/faq"
	"github.com/cinetix/support-bot/respond"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingSink struct {
	conversations []database.Conversation
	err           error
}

func (r *recordingSink) InsertConversation(_ context.Context, conv database.Conversation) (uuid.UUID, error) {
	if r.err != nil {
		return uuid.UUID{}, r.err
	}
	r.conversations = append(r.conversations, conv)
	return uuid.New(), nil
}

type brokenSource struct{}

func (brokenSource) Catalog(_ context.Context) ([]faq.Entry, error) {
	return nil, errors.New("store offline")
}

func newTestServer(sink database.ConversationWriter) *Server {
	composer := respond.NewComposer(respond.WithSelector(func(int) int { return 0 }))
	return New(faq.NewStaticSource(faq.DefaultCatalog()), composer, sink, nil)
}

func postChat(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestChatHandlerExactMatch(t *testing.T) {
	sink := &recordingSink{}
	handler := newTestServer(sink).RegisterRoutes()

	rec := postChat(t, handler, `{"message": "What are the ticket prices?", "user_id": "visitor-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Answered)
	assert.Equal(t, "ticket-prices", resp.FAQID)
	assert.Equal(t, 1.0, resp.MatchScore)
	assert.Contains(t, resp.Reply, "Standard tickets are $12")
	assert.Equal(t, "confused", resp.Emotion)

	// the turn was recorded for analytics
	require.Len(t, sink.conversations, 1)
	assert.Equal(t, "visitor-1", sink.conversations[0].UserID)
	assert.Equal(t, resp.Reply, sink.conversations[0].Reply)
}

func TestChatHandlerNoMatch(t *testing.T) {
	handler := newTestServer(nil).RegisterRoutes()

	rec := postChat(t, handler, `{"message": "asdkjasdkj random gibberish"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Answered)
	assert.Empty(t, resp.FAQID)
	assert.Contains(t, resp.Reply, "Here are some topics I can help with:")
	assert.Contains(t, resp.Reply, "• What are the ticket prices?")
}

func TestChatHandlerRequiresMessage(t *testing.T) {
	handler := newTestServer(nil).RegisterRoutes()

	for _, body := range []string{`{}`, `{"message": ""}`, `not json`} {
		rec := postChat(t, handler, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestChatHandlerSinkFailureDoesNotBlockReply(t *testing.T) {
	sink := &recordingSink{err: errors.New("log store down")}
	handler := newTestServer(sink).RegisterRoutes()

	rec := postChat(t, handler, `{"message": "how do I get a refund"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Answered)
}

func TestChatHandlerCatalogUnavailable(t *testing.T) {
	composer := respond.NewComposer()
	srv := New(brokenSource{}, composer, nil, nil)
	handler := srv.RegisterRoutes()

	rec := postChat(t, handler, `{"message": "hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListFAQHandler(t *testing.T) {
	handler := newTestServer(nil).RegisterRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/faq", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Entries []faqItem `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Entries, len(faq.DefaultCatalog()))
	assert.Equal(t, "ticket-prices", resp.Entries[0].ID)
}

func TestHealthHandler(t *testing.T) {
	handler := newTestServer(nil).RegisterRoutes()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
