package api

import (
	"context"
	"net/http"

	"github.com/samandr77/reconciler/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	Reconcile(ctx context.Context) ([]entity.SettlementResult, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type SettlementResultResponse struct {
	PaymentID string `json:"paymentId"`
	Paid      bool   `json:"paid"`
	Error     string `json:"error,omitempty"`
}

// Reconcile runs one reconciliation pass synchronously and returns the
// settlement results, including per-payment failures.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results, err := h.s.Reconcile(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "reconciliation failed")
		return
	}

	resp := make([]SettlementResultResponse, 0, len(results))

	for _, res := range results {
		v := SettlementResultResponse{
			PaymentID: res.PaymentID,
			Paid:      res.Paid,
		}

		if res.Err != nil {
			v.Error = res.Err.Error()
		}

		resp = append(resp, v)
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
