package v1handler

import (
	"net/http"
	"safescout/pkg/domain"
)

func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	actor, err := identity(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	jobID, err := jobIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	intent, err := h.deps.Payments.CreateIntent(r.Context(), actor, jobID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, intent)
}

// paymentAction factors the shared shape of the release/void endpoints.
func (h *Handler) paymentAction(w http.ResponseWriter, r *http.Request,
	action func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error)) {
	actor, err := identity(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	jobID, err := jobIDParam(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	payment, err := action(r, actor, jobID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) ReleasePayment(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error) {
		return h.deps.Payments.Release(r.Context(), actor, jobID)
	})
}

func (h *Handler) VoidPayment(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error) {
		return h.deps.Payments.Void(r.Context(), actor, jobID)
	})
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Payment, error) {
		return h.deps.Payments.PaymentByJobID(r.Context(), actor, jobID)
	})
}
