// Package server exposes the payflow core over a JSON HTTP API: the three
// calculators, the simulated QR-payment flow, and the expense tracker.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/payflowhq/payflow/internal/ledger"
	"github.com/payflowhq/payflow/internal/merchant"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type handler struct {
	logger    *zap.Logger
	ledger    *ledger.Ledger
	merchants *merchant.Supplier
	balance   float64
	version   string
	validate  *validator.Validate
}

// Options configures the API handler.
type Options struct {
	Ledger         *ledger.Ledger
	Merchants      *merchant.Supplier
	OpeningBalance float64
	Version        string
	AllowedOrigins []string
}

// NewHandler constructs the HTTP handler serving the payflow API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:    logger,
		ledger:    opts.Ledger,
		merchants: opts.Merchants,
		balance:   opts.OpeningBalance,
		version:   version,
		validate:  validator.New(),
	}
	// Report validation failures by JSON field name so clients can map them
	// straight onto form inputs.
	h.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	r := mux.NewRouter()
	r.Use(h.requestID, h.logRequests)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/calculators/emi", h.handleEMI).Methods(http.MethodPost)
	api.HandleFunc("/calculators/fd", h.handleFD).Methods(http.MethodPost)
	api.HandleFunc("/calculators/rd", h.handleRD).Methods(http.MethodPost)
	api.HandleFunc("/scan", h.handleScan).Methods(http.MethodPost)
	api.HandleFunc("/payments", h.handlePayment).Methods(http.MethodPost)
	api.HandleFunc("/transactions", h.handleTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/{id}/receipt", h.handleReceipt).Methods(http.MethodGet)
	api.HandleFunc("/expenses", h.handleListExpenses).Methods(http.MethodGet)
	api.HandleFunc("/expenses", h.handleAddExpense).Methods(http.MethodPost)
	api.HandleFunc("/expenses/summary", h.handleExpenseSummary).Methods(http.MethodGet)
	api.HandleFunc("/expenses/{id}", h.handleDeleteExpense).Methods(http.MethodDelete)
	api.HandleFunc("/dashboard", h.handleDashboard).Methods(http.MethodGet)
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(opts.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

func validationMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(f.Param(), " ", ", ")
	default:
		return "Invalid value"
	}
}

func allowedOrigins(configured []string) []string {
	if len(configured) == 0 {
		return []string{"*"}
	}
	return configured
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	if err := h.validate.Struct(payload); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make(map[string]string, len(invalid))
			for _, f := range invalid {
				fields[f.Field()] = validationMessage(f)
			}
			h.respondValidation(w, fields)
			return false
		}
		h.respondError(w, http.StatusBadRequest, "invalid payload")
		return false
	}
	return true
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondValidation reports per-field messages for inline display next to the
// offending inputs.
func (h *handler) respondValidation(w http.ResponseWriter, fields map[string]string) {
	h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}
