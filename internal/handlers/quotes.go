package handlers

import (
	"net/http"
	"time"

	"github.com/healncure/healncure-backend/internal/content"
	"github.com/healncure/healncure-backend/internal/models"
	"github.com/healncure/healncure-backend/internal/services"
)

type QuotesResponse struct {
	Success bool           `json:"success"`
	Quotes  []models.Quote `json:"quotes"`
	Total   int            `json:"total"`
}

type DailyQuoteResponse struct {
	Success bool         `json:"success"`
	Date    string       `json:"date"`
	Quote   models.Quote `json:"quote"`
}

// GetQuotes returns the full quote pool.
func GetQuotes(w http.ResponseWriter, r *http.Request) {
	quotes := content.Quotes()
	writeJSON(w, http.StatusOK, QuotesResponse{
		Success: true,
		Quotes:  quotes,
		Total:   len(quotes),
	})
}

// GetDailyQuote returns today's quote. The rotation is deterministic per
// calendar day; Redis caching just spares the date arithmetic and keeps the
// response identical across instances for the rest of the day.
func GetDailyQuote(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	date := now.Format("2006-01-02")
	cacheKey := "quote:daily:" + date

	var quote models.Quote
	if hit, _ := services.Cache.Get(cacheKey, &quote); !hit {
		quote = content.QuoteOfTheDay(now)

		// Cache until local midnight; a cache failure is non-fatal.
		endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		_ = services.Cache.SetWithTTL(cacheKey, quote, time.Until(endOfDay))
	}

	writeJSON(w, http.StatusOK, DailyQuoteResponse{
		Success: true,
		Date:    date,
		Quote:   quote,
	})
}
