package jobs

import (
	"context"
	"fmt"
	"net/url"
	"safescout/internal/config"
	"safescout/internal/pricing"
	"safescout/pkg/domain"
	"safescout/pkg/metrics"
	"safescout/pkg/serrors"
	"safescout/pkg/storage"
	"time"

	"github.com/google/uuid"
)

// Options configure how verification jobs are created and how their risk
// assessment is enqueued. These settings are typically derived from
// application configuration.
type Options struct {
	// RiskMaxAttempts is the maximum number of attempts the background worker
	// should make when assessing a job's risk before marking the queue entry
	// failed.
	RiskMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RiskMaxAttempts: cfg.Risk.MaxAttempts,
	}
}

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer and job enqueueing.
type service struct {
	// options holds runtime configuration that affects enqueueing.
	options Options
	// storage is the persistence layer used to store jobs and manage the queue.
	storage storage.Storage
}

func validMarketplace(m domain.Marketplace) bool {
	switch m {
	case domain.MarketplaceFacebook, domain.MarketplaceEbay,
		domain.MarketplaceGumtree, domain.MarketplaceOther:
		return true
	}

	return false
}

func validateCreate(req CreateReq) error {
	u, err := url.ParseRequestURI(req.ListingURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return serrors.With(serrors.ErrBadRequest, "invalid listing URL")
	}
	if !validMarketplace(req.Marketplace) {
		return serrors.With(serrors.ErrBadRequest, "unknown marketplace: %s", req.Marketplace)
	}
	if req.ItemTitle == "" {
		return serrors.With(serrors.ErrBadRequest, "item title is required")
	}
	if req.ItemPrice.IsNegative() {
		return serrors.With(serrors.ErrBadRequest, "item price must not be negative")
	}
	if len(req.ItemPhotos) == 0 {
		return serrors.With(serrors.ErrBadRequest, "at least one item photo is required")
	}
	if req.SellerAccountAgeDays < 0 {
		return serrors.With(serrors.ErrBadRequest, "seller account age must not be negative")
	}

	return nil
}

// Create validates the listing, computes and freezes the tier's fee breakdown
// and stores the job together with its queued risk assessment in one
// transaction. Only buyers create jobs. The stored job starts in CREATED with
// no risk verdict; the verdict is attached later by the background worker.
func (s service) Create(ctx context.Context, actor domain.Identity, req CreateReq) (*domain.Job, error) {
	if actor.Role != domain.RoleBuyer {
		return nil, serrors.With(serrors.ErrForbidden, "only buyers can create jobs")
	}

	fees, err := pricing.Quote(req.Tier)
	if err != nil {
		return nil, err
	}
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	var job *domain.Job
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreJob(ctx, domain.Job{
			BuyerID:              actor.UserID,
			Tier:                 req.Tier,
			ScoutFee:             fees.ScoutFee,
			TotalFee:             fees.TotalFee,
			ListingURL:           req.ListingURL,
			Marketplace:          req.Marketplace,
			ItemTitle:            req.ItemTitle,
			ItemPrice:            req.ItemPrice,
			ItemPhotos:           req.ItemPhotos,
			SellerAccountAgeDays: req.SellerAccountAgeDays,
			Description:          req.Description,
			Status:               domain.JobStatusCreated,
		})
		if err != nil {
			return fmt.Errorf("could not store job: %w", err)
		}
		job = res

		if _, err := tx.AddQueueJob(ctx, RiskJobArgs{
			JobID:       uuid.UUID(res.ID).String(),
			maxAttempts: s.options.RiskMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue risk assessment: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create job: %w", err)
	}

	metrics.JobsCreated.WithLabelValues(string(job.Tier)).Inc()

	return job, nil
}

// visible reports whether the actor may read the job: its buyer, its assigned
// scout, or an admin.
func visible(actor domain.Identity, job *domain.Job) bool {
	if actor.Role == domain.RoleAdmin {
		return true
	}
	if job.BuyerID == actor.UserID {
		return true
	}

	return job.ScoutID != nil && *job.ScoutID == actor.UserID
}

// JobByID fetches a single job for the given actor. Jobs the actor may not
// read are reported as not found rather than forbidden so their existence is
// not leaked.
func (s service) JobByID(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error) {
	job, err := s.storage.JobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if job == nil || !visible(actor, job) {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	return job, nil
}

func parseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, cursor)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return t, nil
}

func nextCursor(page storage.JobPage) string {
	if page.NextCursor == nil {
		return ""
	}

	return page.NextCursor.Format(time.RFC3339)
}

// BuyerJobs returns a page of jobs owned by the given buyer. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (s service) BuyerJobs(ctx context.Context, buyerID domain.UserID, cursor string, limit uint) ([]domain.Job, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.BuyerJobs(ctx, buyerID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get buyer jobs: %w", err)
	}

	return page.Jobs, nextCursor(page), nil
}

// ScoutListings returns a page of jobs visible to the given scout: the
// unclaimed pool plus the scout's own claimed backlog. Pagination works the
// same way as BuyerJobs.
func (s service) ScoutListings(ctx context.Context, scoutID domain.UserID, cursor string, limit uint) ([]domain.Job, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := s.storage.ScoutListings(ctx, scoutID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get scout listings: %w", err)
	}

	return page.Jobs, nextCursor(page), nil
}

// conflictOrNotFound maps a missed conditional update to the right error by
// re-reading the row: a missing row is not found, an existing row in the
// wrong state is a conflict.
func (s service) conflictOrNotFound(ctx context.Context, id domain.JobID, conflictMsg string) error {
	job, err := s.storage.JobByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get job: %w", err)
	}
	if job == nil {
		return serrors.With(serrors.ErrNotFound, "job not found")
	}

	return serrors.With(serrors.ErrConflict, "%s", conflictMsg)
}

// Assign claims a CREATED job for the acting scout. The claim is a single
// conditional update, so of any concurrent claims exactly one succeeds and
// the rest receive a conflict error.
func (s service) Assign(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error) {
	if actor.Role != domain.RoleScout {
		return nil, serrors.With(serrors.ErrForbidden, "only scouts can claim jobs")
	}

	job, err := s.storage.TryAssignScout(ctx, id, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not assign scout: %w", err)
	}
	if job == nil {
		return nil, s.conflictOrNotFound(ctx, id, "job is no longer open for assignment")
	}

	metrics.JobsAssigned.Inc()
	metrics.JobTransitions.WithLabelValues(string(domain.JobStatusScoutAssigned)).Inc()

	return job, nil
}

// Start moves the actor's assigned job from SCOUT_ASSIGNED to IN_PROGRESS.
func (s service) Start(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error) {
	if actor.Role != domain.RoleScout {
		return nil, serrors.With(serrors.ErrForbidden, "only scouts can start jobs")
	}

	current, err := s.storage.JobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}
	if current.ScoutID == nil || *current.ScoutID != actor.UserID {
		return nil, serrors.With(serrors.ErrForbidden, "job is assigned to another scout")
	}
	if !IsTransitionAllowed(current.Status, domain.JobStatusInProgress) {
		return nil, serrors.With(serrors.ErrConflict, "job cannot be started in its current state")
	}

	job, err := s.storage.UpdateJobStatus(ctx, id, domain.JobStatusScoutAssigned, domain.JobStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("could not update job status: %w", err)
	}
	if job == nil {
		return nil, s.conflictOrNotFound(ctx, id, "job cannot be started in its current state")
	}

	metrics.JobTransitions.WithLabelValues(string(domain.JobStatusInProgress)).Inc()

	return job, nil
}

func validateReport(req ReportReq) error {
	if req.ConditionGrade == "" {
		return serrors.With(serrors.ErrBadRequest, "condition grade is required")
	}
	if req.MarketPriceMin.IsNegative() || req.MarketPriceMax.IsNegative() {
		return serrors.With(serrors.ErrBadRequest, "market price estimate must not be negative")
	}
	if req.MarketPriceMin.GreaterThan(req.MarketPriceMax) {
		return serrors.With(serrors.ErrBadRequest, "market price minimum exceeds maximum")
	}

	return nil
}

// SubmitReport stores the scout's findings and moves the job from IN_PROGRESS
// to VERIFIED. Both writes happen in one transaction so a job can never be
// VERIFIED without a report or vice versa. The narrative fields are generated
// from the findings.
func (s service) SubmitReport(ctx context.Context, actor domain.Identity, id domain.JobID, req ReportReq) (*domain.Report, error) {
	if actor.Role != domain.RoleScout {
		return nil, serrors.With(serrors.ErrForbidden, "only scouts can submit reports")
	}
	if err := validateReport(req); err != nil {
		return nil, err
	}

	current, err := s.storage.JobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}
	if current.ScoutID == nil || *current.ScoutID != actor.UserID {
		return nil, serrors.With(serrors.ErrForbidden, "job is assigned to another scout")
	}
	if !IsTransitionAllowed(current.Status, domain.JobStatusVerified) {
		return nil, serrors.With(serrors.ErrConflict, "job cannot be verified in its current state")
	}

	defects := req.Defects
	if defects == nil {
		defects = []string{}
	}

	var report *domain.Report
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreReport(ctx, domain.Report{
			JobID:               id,
			ScoutID:             actor.UserID,
			ConditionGrade:      req.ConditionGrade,
			Defects:             defects,
			MarketPriceMin:      req.MarketPriceMin,
			MarketPriceMax:      req.MarketPriceMax,
			Summary:             fmt.Sprintf("Verification summary for %s", current.ItemTitle),
			ConditionAssessment: fmt.Sprintf("Condition reported as %s.", req.ConditionGrade),
			AuthenticityCheck:   "Authenticity checks pending AI integration.",
			Recommendation:      domain.ReportRecommendationNegotiate,
		})
		if err != nil {
			return fmt.Errorf("could not store report: %w", err)
		}
		report = res

		job, err := tx.UpdateJobStatus(ctx, id, domain.JobStatusInProgress, domain.JobStatusVerified)
		if err != nil {
			return fmt.Errorf("could not update job status: %w", err)
		}
		if job == nil {
			return serrors.With(serrors.ErrConflict, "job cannot be verified in its current state")
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	metrics.JobTransitions.WithLabelValues(string(domain.JobStatusVerified)).Inc()

	return report, nil
}

// Report returns the verification report of a job visible to the actor.
func (s service) Report(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Report, error) {
	if _, err := s.JobByID(ctx, actor, id); err != nil {
		return nil, err
	}

	report, err := s.storage.ReportByJobID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if report == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}

	return report, nil
}

// Cancel moves a non-terminal job to CANCELLED. Only the owning buyer or an
// admin may cancel; cancelling a COMPLETED or CANCELLED job is a conflict.
func (s service) Cancel(ctx context.Context, actor domain.Identity, id domain.JobID) (*domain.Job, error) {
	current, err := s.storage.JobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	if current == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}
	if actor.Role != domain.RoleAdmin && current.BuyerID != actor.UserID {
		return nil, serrors.With(serrors.ErrForbidden, "only the buyer can cancel this job")
	}
	if !IsTransitionAllowed(current.Status, domain.JobStatusCancelled) {
		return nil, serrors.With(serrors.ErrConflict, "job is already in a terminal state")
	}

	job, err := s.storage.CancelJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not cancel job: %w", err)
	}
	if job == nil {
		return nil, s.conflictOrNotFound(ctx, id, "job is already in a terminal state")
	}

	metrics.JobTransitions.WithLabelValues(string(domain.JobStatusCancelled)).Inc()

	return job, nil
}

// Complete moves a VERIFIED job to COMPLETED. It is driven by the payment
// subsystem when the buyer's funds settle, not exposed to actors directly.
func (s service) Complete(ctx context.Context, id domain.JobID) (*domain.Job, error) {
	job, err := s.storage.UpdateJobStatus(ctx, id, domain.JobStatusVerified, domain.JobStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("could not update job status: %w", err)
	}
	if job == nil {
		return nil, s.conflictOrNotFound(ctx, id, "job cannot be completed in its current state")
	}

	metrics.JobTransitions.WithLabelValues(string(domain.JobStatusCompleted)).Inc()

	return job, nil
}

// New creates a new Service instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Service {
	return &service{
		options: options,
		storage: storage,
	}
}
