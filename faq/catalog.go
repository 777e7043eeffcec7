package faq

import (
	"context"

	"github.com/cinetix/support-bot/logging"
)

// CatalogSource supplies the FAQ catalog the bot answers from. The
// returned slice is read-only reference data; callers must not mutate it
// while a match is in flight.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]Entry, error)
}

// StaticSource serves a fixed in-memory catalog.
type StaticSource struct {
	entries []Entry
}

// NewStaticSource creates a source over the given entries. A nil or empty
// list is valid; matching degrades to "no match".
func NewStaticSource(entries []Entry) *StaticSource {
	return &StaticSource{entries: entries}
}

func (s *StaticSource) Catalog(_ context.Context) ([]Entry, error) {
	return s.entries, nil
}

// FallbackSource reads the catalog from a primary source (typically the
// admin-editable database) and falls back to a secondary one when the
// primary errors or comes back empty. The composer is guaranteed to never
// see a failed catalog fetch.
type FallbackSource struct {
	primary  CatalogSource
	fallback CatalogSource
	logger   *logging.Logger
}

func NewFallbackSource(primary, fallback CatalogSource, logger *logging.Logger) *FallbackSource {
	if logger == nil {
		logger = logging.Default()
	}
	return &FallbackSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (f *FallbackSource) Catalog(ctx context.Context) ([]Entry, error) {
	entries, err := f.primary.Catalog(ctx)
	if err != nil {
		f.logger.Error("primary catalog source failed, using fallback", "error", err.Error())
		return f.fallback.Catalog(ctx)
	}
	if len(entries) == 0 {
		f.logger.Warn("primary catalog source is empty, using fallback")
		return f.fallback.Catalog(ctx)
	}
	return entries, nil
}

// DefaultCatalog is the built-in list the bot answers from when no
// database is configured or the remote fetch fails.
func DefaultCatalog() []Entry {
	return []Entry{
		{
			ID:       "ticket-prices",
			Question: "What are the ticket prices?",
			Answer:   "Standard tickets are $12 for adults, $9 for children under 12, and $10 for seniors. 3D and IMAX showings carry a $4 surcharge.",
			Category: "tickets",
			Keywords: "ticket price,price,prices,cost,how much",
		},
		{
			ID:       "refunds",
			Question: "How do I get a refund?",
			Answer:   "Tickets can be refunded up to 2 hours before showtime. Go to My Orders, select the booking, and tap Cancel. The refund lands on your original payment method within 3-5 business days.",
			Category: "refunds",
			Keywords: "refund,cancel,cancellation,money back",
			EmotionAnswers: map[string]string{
				"angry":      "I'm really sorry about the trouble. You can cancel up to 2 hours before showtime under My Orders, and the refund reaches your original payment method within 3-5 business days. If anything blocks the cancellation, our team will sort it out right away.",
				"frustrated": "Sorry this has been a hassle. The quickest route: open My Orders, pick the booking, tap Cancel. Refunds post back to your payment method within 3-5 business days. If the button is missing, the showing is within 2 hours and the desk can still help.",
			},
		},
		{
			ID:       "seat-selection",
			Question: "Can I choose my seats?",
			Answer:   "Yes. After picking a showtime you'll see the seat map; green seats are available. Your selection is held for 10 minutes while you check out.",
			Category: "booking",
			Keywords: "seat,seats,seating,seat map",
		},
		{
			ID:       "showtimes",
			Question: "How do I find showtimes?",
			Answer:   "Pick a movie or a theater on the home page to see all upcoming showtimes. Listings go live every Tuesday for the following week.",
			Category: "showtimes",
			Keywords: "showtime,showtimes,schedule,what time,playing",
		},
		{
			ID:       "online-booking",
			Question: "How do I book tickets online?",
			Answer:   "Choose a movie, showtime, and seats, then pay at checkout. Your tickets arrive by email and appear under My Orders with a QR code for entry.",
			Category: "booking",
			Keywords: "book,booking,reserve,buy tickets",
		},
		{
			ID:       "payment-methods",
			Question: "What payment methods do you accept?",
			Answer:   "We accept all major credit and debit cards, PayPal, Apple Pay, Google Pay, and our own gift cards.",
			Category: "payments",
			Keywords: "payment,credit card,debit card,paypal,apple pay,google pay",
		},
		{
			ID:       "gift-cards",
			Question: "Do you sell gift cards?",
			Answer:   "Yes, digital gift cards from $10 to $200 are available under the Gift Cards tab. They never expire and can be combined with other payment methods at checkout.",
			Category: "payments",
			Keywords: "gift card,gift cards,voucher",
		},
		{
			ID:       "discounts",
			Question: "Do you offer discounts?",
			Answer:   "Students and seniors save $2 with a valid ID, Tuesdays are half price for members, and groups of 10+ can email groups@ for a quote.",
			Category: "tickets",
			Keywords: "discount,discounts,student,senior,promo,coupon",
		},
	}
}
