package v1handler

import (
	"net/http"
	"safescout/internal/jobs"
	"safescout/pkg/domain"

	"github.com/shopspring/decimal"
)

type createJobRequest struct {
	Tier                 domain.Tier        `json:"tier"`
	ListingURL           string             `json:"listingUrl"`
	Marketplace          domain.Marketplace `json:"marketplace"`
	ItemTitle            string             `json:"itemTitle"`
	ItemPrice            decimal.Decimal    `json:"itemPrice"`
	ItemPhotos           []string           `json:"itemPhotos"`
	SellerAccountAgeDays int                `json:"sellerAccountAgeDays"`
	Description          string             `json:"description"`
}

type jobPageResponse struct {
	Jobs       []domain.Job `json:"jobs"`
	NextCursor string       `json:"nextCursor,omitempty"`
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	actor, err := identity(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req createJobRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Create(r.Context(), actor, jobs.CreateReq{
		Tier:                 req.Tier,
		ListingURL:           req.ListingURL,
		Marketplace:          req.Marketplace,
		ItemTitle:            req.ItemTitle,
		ItemPrice:            req.ItemPrice,
		ItemPhotos:           req.ItemPhotos,
		SellerAccountAgeDays: req.SellerAccountAgeDays,
		Description:          req.Description,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, job)
}

// ListJobs returns the acting buyer's jobs, most recent first.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	actor, err := identity(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	cursor, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, next, err := h.deps.Jobs.BuyerJobs(r.Context(), actor.UserID, cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, jobPageResponse{Jobs: res, NextCursor: next})
}

// AvailableJobs returns the open pool plus the acting scout's claimed backlog.
func (h *Handler) AvailableJobs(w http.ResponseWriter, r *http.Request) {
	actor, err := identity(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	cursor, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, next, err := h.deps.Jobs.ScoutListings(r.Context(), actor.UserID, cursor, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, jobPageResponse{Jobs: res, NextCursor: next})
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
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

	job, err := h.deps.Jobs.JobByID(r.Context(), actor, jobID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, job)
}

// jobAction factors the shared shape of the assign/start/cancel endpoints.
func (h *Handler) jobAction(w http.ResponseWriter, r *http.Request,
	action func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Job, error)) {
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

	job, err := action(r, actor, jobID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (h *Handler) AssignJob(w http.ResponseWriter, r *http.Request) {
	h.jobAction(w, r, func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Job, error) {
		return h.deps.Jobs.Assign(r.Context(), actor, jobID)
	})
}

func (h *Handler) StartJob(w http.ResponseWriter, r *http.Request) {
	h.jobAction(w, r, func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Job, error) {
		return h.deps.Jobs.Start(r.Context(), actor, jobID)
	})
}

func (h *Handler) CancelJob(w http.ResponseWriter, r *http.Request) {
	h.jobAction(w, r, func(r *http.Request, actor domain.Identity, jobID domain.JobID) (*domain.Job, error) {
		return h.deps.Jobs.Cancel(r.Context(), actor, jobID)
	})
}

type submitReportRequest struct {
	ConditionGrade string          `json:"conditionGrade"`
	Defects        []string        `json:"defects"`
	MarketPriceMin decimal.Decimal `json:"marketPriceMin"`
	MarketPriceMax decimal.Decimal `json:"marketPriceMax"`
}

func (h *Handler) SubmitReport(w http.ResponseWriter, r *http.Request) {
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

	var req submitReportRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	report, err := h.deps.Jobs.SubmitReport(r.Context(), actor, jobID, jobs.ReportReq{
		ConditionGrade: req.ConditionGrade,
		Defects:        req.Defects,
		MarketPriceMin: req.MarketPriceMin,
		MarketPriceMax: req.MarketPriceMax,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.deps.Jobs.Report(r.Context(), actor, jobID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, report)
}
