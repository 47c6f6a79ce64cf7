package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/robinvdvleuten/cashbook/ledger"
)

// RecordResponse is one ledger record together with its index, which is
// the record's only identity.
type RecordResponse struct {
	Index int `json:"index"`
	ledger.Record
}

// BalanceResponse is the JSON response structure for the balance endpoint.
type BalanceResponse struct {
	Balance int64 `json:"balance"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// handleGetRecords handles GET requests to /api/records.
//
// Query parameters:
//   - category: "Income" or "Expense".
//   - date: full or partial date ("2024", "2024-05", "2024-05-02").
//   - amount: exact integer amount.
//
// Omitted parameters act as wildcards. Results keep ledger order.
func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	filter := ledger.Filter{
		Date: r.URL.Query().Get("date"),
	}

	if categoryParam := r.URL.Query().Get("category"); categoryParam != "" {
		category, err := ledger.ParseCategory(categoryParam)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter.Category = category
	}

	if amountParam := r.URL.Query().Get("amount"); amountParam != "" {
		var amount int64
		if err := json.Unmarshal([]byte(amountParam), &amount); err != nil {
			http.Error(w, "invalid amount: "+amountParam, http.StatusBadRequest)
			return
		}
		filter.Amount = amount
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]RecordResponse, 0, s.store.Len())
	for index, record := range s.store.Records() {
		if filter.Matches(record) {
			results = append(results, RecordResponse{Index: index, Record: record})
		}
	}

	writeJSON(w, http.StatusOK, results)
}

// handlePostRecord handles POST requests to /api/records. The body uses
// the persisted record shape; a missing date defaults to today.
func (s *Server) handlePostRecord(w http.ResponseWriter, r *http.Request) {
	var record ledger.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid record: "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := ledger.ParseCategory(string(record.Category)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if record.Amount < 0 {
		http.Error(w, "amount must not be negative", http.StatusBadRequest)
		return
	}
	if record.Date == "" {
		record.Date = time.Now().Format(ledger.DateFormat)
	} else if _, err := time.Parse(ledger.DateFormat, record.Date); err != nil {
		http.Error(w, "invalid date format (expected YYYY-MM-DD): "+record.Date, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	index := s.store.Len()
	err := s.store.Add(record)
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, RecordResponse{Index: index, Record: record})
}

// handleGetBalance handles GET requests to /api/balance.
func (s *Server) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	balance, income, expense := s.store.Balance()
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, BalanceResponse{
		Balance: balance,
		Income:  income,
		Expense: expense,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
