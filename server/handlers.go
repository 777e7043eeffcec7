package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cinetix/support-bot/database"
	"github.com/cinetix/support-bot/metrics"
	"github.com/cinetix/support-bot/respond"
)

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"user_id"`
}

type chatResponse struct {
	Reply           string   `json:"reply"`
	Emotion         string   `json:"emotion"`
	EmotionBadge    string   `json:"emotion_badge,omitempty"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	FAQID           string   `json:"faq_id,omitempty"`
	MatchScore      float64  `json:"match_score"`
	Answered        bool     `json:"answered"`
}

// chatHandler composes a reply for one visitor message and records the turn.
func (s *Server) chatHandler(c *gin.Context) {
	start := time.Now()

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	metrics.ChatMessageReceivedCount.Add(1)

	catalog, err := s.catalog.Catalog(c.Request.Context())
	if err != nil {
		// Only reachable without a fallback source configured.
		s.logger.Error("catalog fetch failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	reply := s.composer.Compose(req.Message, catalog)

	metrics.EmotionDetectedTotal.WithLabelValues(reply.Emotion.String()).Inc()
	metrics.FAQMatchScore.Observe(reply.MatchScore)
	switch {
	case !reply.Answered():
		metrics.NoMatchCount.Add(1)
		metrics.FAQMatchTotal.WithLabelValues("none").Inc()
	case reply.MatchScore == 1.0:
		metrics.ExactMatchCount.Add(1)
		metrics.FAQMatchTotal.WithLabelValues("exact").Inc()
	default:
		metrics.FuzzyMatchCount.Add(1)
		metrics.FAQMatchTotal.WithLabelValues("fuzzy").Inc()
	}

	s.recordTurn(c, req, reply)

	resp := chatResponse{
		Reply:           reply.Text,
		Emotion:         reply.Emotion.String(),
		EmotionBadge:    reply.Emotion.Badge(),
		Confidence:      reply.Confidence,
		MatchedKeywords: reply.MatchedKeywords,
		MatchScore:      reply.MatchScore,
		Answered:        reply.Answered(),
	}
	if reply.FAQ != nil {
		resp.FAQID = reply.FAQ.ID
	}

	metrics.ChatReplySentCount.Add(1)
	metrics.ChatRequestDuration.Observe(time.Since(start).Seconds())
	c.JSON(http.StatusOK, resp)
}

type faqItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Category string `json:"category,omitempty"`
}

// listFAQHandler returns the questions the bot can currently answer.
func (s *Server) listFAQHandler(c *gin.Context) {
	catalog, err := s.catalog.Catalog(c.Request.Context())
	if err != nil {
		s.logger.Error("catalog fetch failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}

	items := make([]faqItem, 0, len(catalog))
	for i := range catalog {
		items = append(items, faqItem{
			ID:       catalog[i].ID,
			Question: catalog[i].Question,
			Category: catalog[i].Category,
		})
	}

	c.JSON(http.StatusOK, gin.H{"entries": items})
}

// recordTurn writes the turn to the conversation log. Failures are logged
// and counted, never surfaced to the visitor.
func (s *Server) recordTurn(c *gin.Context, req chatRequest, reply respond.Reply) {
	if s.sink == nil {
		return
	}

	conv := database.Conversation{
		UserID:     req.UserID,
		Message:    req.Message,
		Reply:      reply.Text,
		Emotion:    reply.Emotion.String(),
		Confidence: reply.Confidence,
		MatchScore: reply.MatchScore,
	}
	if reply.FAQ != nil {
		if faqID, err := uuid.Parse(reply.FAQ.ID); err == nil {
			conv.FAQID = &faqID
		}
	}

	if _, err := s.sink.InsertConversation(c.Request.Context(), conv); err != nil {
		metrics.ConversationLogFailCount.Add(1)
		s.logger.Error("failed to record conversation", "error", err.Error())
	}
}
