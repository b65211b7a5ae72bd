package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"auction-house/pkg/logger"

	"github.com/gorilla/mux"
)

// ledgerStub is an in-memory stand-in for the external balance service so
// the auction service can run end-to-end locally.
type ledgerStub struct {
	mu       sync.Mutex
	balances map[string]int64
	log      logger.Logger
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type depositRequest struct {
	Amount int64 `json:"amount"`
}

func (s *ledgerStub) getBalance(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]

	s.mu.Lock()
	balance := s.balances[user]
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": user,
		"balance": balance,
	})
}

func (s *ledgerStub) deposit(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount must be positive"})
		return
	}

	s.mu.Lock()
	s.balances[user] += req.Amount
	balance := s.balances[user]
	s.mu.Unlock()

	s.log.Info("Deposit", "user", user, "amount", req.Amount, "balance", balance)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": user,
		"balance": balance,
	})
}

func (s *ledgerStub) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.From == "" || req.To == "" || req.Amount <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from, to and a positive amount are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.balances[req.From] < req.Amount {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "insufficient funds"})
		return
	}

	s.balances[req.From] -= req.Amount
	s.balances[req.To] += req.Amount

	s.log.Info("Transfer", "from", req.From, "to", req.To, "amount", req.Amount)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	flag.Parse()

	log := logger.New()
	log.Info("Starting ledger stub", "address", *addr)

	stub := &ledgerStub{
		balances: make(map[string]int64),
		log:      log,
	}

	r := mux.NewRouter()
	r.HandleFunc("/accounts/{user}/balance", stub.getBalance).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{user}/deposit", stub.deposit).Methods(http.MethodPost)
	r.HandleFunc("/transfers", stub.transfer).Methods(http.MethodPost)

	srv := &http.Server{
		Addr:    *addr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down ledger stub...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
}
