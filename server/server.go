package server

import (
	"net/http"
	"time"

	"github.com/cinetix/support-bot/database"
	"github.com/cinetix/support-bot/faq"
	"github.com/cinetix/support-bot/logging"
	"github.com/cinetix/support-bot/respond"
)

// Server is the public chat API: it turns visitor messages into composed
// replies and records each turn for analytics.
type Server struct {
	catalog  faq.CatalogSource
	composer *respond.Composer
	sink     database.ConversationWriter
	logger   *logging.Logger
}

// New creates a chat server. sink may be nil when no conversation store
// is configured; replies still work, turns just aren't recorded.
func New(catalog faq.CatalogSource, composer *respond.Composer, sink database.ConversationWriter, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}
	if composer == nil {
		composer = respond.NewComposer()
	}
	return &Server{
		catalog:  catalog,
		composer: composer,
		sink:     sink,
		logger:   logger.WithComponent("server"),
	}
}

// HTTPServer wraps the chat routes in an http.Server with sane timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.RegisterRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
