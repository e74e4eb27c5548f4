package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/payflowhq/payflow/internal/ledger"
	"github.com/payflowhq/payflow/internal/merchant"
	"go.uber.org/zap"
)

type scanRequest struct {
	Source string `json:"source" validate:"required,oneof=camera upload"`
}

func (h *handler) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if !h.decode(w, r, &req) {
		return
	}

	m, err := h.merchants.Scan(r.Context(), merchant.Source(req.Source))
	if err != nil {
		// The client went away mid-scan; nothing was recorded.
		h.logger.Debug("scan abandoned",
			zap.String("op", "server.handleScan"),
			zap.Error(err),
		)
		return
	}
	h.respondJSON(w, http.StatusOK, m)
}

type paymentRequest struct {
	MerchantName string  `json:"merchantName" validate:"required"`
	UPIID        string  `json:"upiId" validate:"required"`
	Amount       float64 `json:"amount"`
	Note         string  `json:"note"`
}

func (h *handler) handlePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if !h.decode(w, r, &req) {
		return
	}

	m := merchant.Merchant{
		Name:  strings.TrimSpace(req.MerchantName),
		UPIID: strings.TrimSpace(req.UPIID),
	}
	txn, err := h.ledger.RecordTransaction(m, req.Amount, req.Note)
	if err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			h.respondValidation(w, map[string]string{verr.Field: verr.Message})
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusCreated, txn)
}

func (h *handler) handleTransactions(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.ledger.Transactions())
}

func (h *handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	txn, ok := h.ledger.Transaction(id)
	if !ok {
		h.respondError(w, http.StatusNotFound, "transaction not found")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "PayFlow_Receipt_"+txn.ID+".txt"))
	if _, err := w.Write([]byte(ledger.Receipt(txn))); err != nil {
		h.logger.Warn("failed to write receipt",
			zap.String("op", "server.handleReceipt"),
			zap.Error(err),
		)
	}
}
