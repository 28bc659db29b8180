package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"safescout/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PgJob is the row shape of the jobs table.
type PgJob struct {
	ID      uuid.UUID     `db:"id"       goqu:"skipinsert"`
	BuyerID uuid.UUID     `db:"buyer_id"`
	ScoutID uuid.NullUUID `db:"scout_id" goqu:"skipinsert"`

	Tier     string          `db:"tier"`
	ScoutFee decimal.Decimal `db:"scout_fee"`
	TotalFee decimal.Decimal `db:"total_fee"`

	ListingURL  string          `db:"listing_url"`
	Marketplace string          `db:"marketplace"`
	ItemTitle   string          `db:"item_title"`
	ItemPrice   decimal.Decimal `db:"item_price"`
	ItemPhotos  json.RawMessage `db:"item_photos"`
	SellerAge   int             `db:"seller_account_age_days"`
	Description sql.NullString  `db:"description"`

	RiskScore          sql.NullInt64   `db:"risk_score"          goqu:"skipinsert"`
	RiskSignals        json.RawMessage `db:"risk_signals"        goqu:"skipinsert"`
	RiskRecommendation sql.NullString  `db:"risk_recommendation" goqu:"skipinsert"`
	RiskExplanation    sql.NullString  `db:"risk_explanation"    goqu:"skipinsert"`

	Status string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgJob) ToDomain() (*domain.Job, error) {
	var photos []string
	if len(p.ItemPhotos) > 0 {
		if err := json.Unmarshal(p.ItemPhotos, &photos); err != nil {
			return nil, fmt.Errorf("could not unmarshal item photos: %w", err)
		}
	}

	// the four risk fields are written together; score presence implies all four
	var risk *domain.RiskVerdict
	if p.RiskScore.Valid {
		var signals []string
		if len(p.RiskSignals) > 0 {
			if err := json.Unmarshal(p.RiskSignals, &signals); err != nil {
				return nil, fmt.Errorf("could not unmarshal risk signals: %w", err)
			}
		}
		risk = &domain.RiskVerdict{
			Score:          int(p.RiskScore.Int64),
			Signals:        signals,
			Recommendation: domain.Recommendation(p.RiskRecommendation.String),
			Explanation:    p.RiskExplanation.String,
		}
	}

	var scoutID *domain.UserID
	if p.ScoutID.Valid {
		id := domain.UserID(p.ScoutID.UUID)
		scoutID = &id
	}

	status, err := domain.ParseJobStatus(p.Status)
	if err != nil {
		return nil, fmt.Errorf("could not parse job status: %w", err)
	}

	return &domain.Job{
		ID:                   domain.JobID(p.ID),
		BuyerID:              domain.UserID(p.BuyerID),
		ScoutID:              scoutID,
		Tier:                 domain.Tier(p.Tier),
		ScoutFee:             p.ScoutFee,
		TotalFee:             p.TotalFee,
		ListingURL:           p.ListingURL,
		Marketplace:          domain.Marketplace(p.Marketplace),
		ItemTitle:            p.ItemTitle,
		ItemPrice:            p.ItemPrice,
		ItemPhotos:           photos,
		SellerAccountAgeDays: p.SellerAge,
		Description:          p.Description.String,
		Risk:                 risk,
		Status:               status,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}, nil
}

func (p *PgJob) FromDomain(job domain.Job) error {
	photos, err := json.Marshal(job.ItemPhotos)
	if err != nil {
		return fmt.Errorf("could not marshal item photos: %w", err)
	}

	var scoutID uuid.NullUUID
	if job.ScoutID != nil {
		scoutID = uuid.NullUUID{UUID: uuid.UUID(*job.ScoutID), Valid: true}
	}

	*p = PgJob{
		ID:          uuid.UUID(job.ID),
		BuyerID:     uuid.UUID(job.BuyerID),
		ScoutID:     scoutID,
		Tier:        string(job.Tier),
		ScoutFee:    job.ScoutFee,
		TotalFee:    job.TotalFee,
		ListingURL:  job.ListingURL,
		Marketplace: string(job.Marketplace),
		ItemTitle:   job.ItemTitle,
		ItemPrice:   job.ItemPrice,
		ItemPhotos:  photos,
		SellerAge:   job.SellerAccountAgeDays,
		Description: sql.NullString{
			String: job.Description,
			Valid:  job.Description != "",
		},
		Status:    string(job.Status),
		CreatedAt: job.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  job.UpdatedAt,
			Valid: !job.UpdatedAt.IsZero(),
		},
	}

	return nil
}

func pgJobsToDomain(jobs []PgJob) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(jobs))
	for i := range jobs {
		d, err := jobs[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// PgUser is the row shape of the users table.
type PgUser struct {
	ID           uuid.UUID       `db:"id" goqu:"skipinsert"`
	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	Role         string          `db:"role"`
	Rating       sql.NullFloat64 `db:"rating"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Role:         domain.Role(p.Role),
		Rating:       p.Rating.Float64,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Rating: sql.NullFloat64{
			Float64: user.Rating,
			Valid:   user.Rating != 0,
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  user.UpdatedAt,
			Valid: !user.UpdatedAt.IsZero(),
		},
	}
}

// PgReport is the row shape of the verification_reports table.
type PgReport struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	JobID   uuid.UUID `db:"job_id"`
	ScoutID uuid.UUID `db:"scout_id"`

	ConditionGrade string          `db:"condition_grade"`
	Defects        json.RawMessage `db:"defects"`
	MarketPriceMin decimal.Decimal `db:"market_price_min"`
	MarketPriceMax decimal.Decimal `db:"market_price_max"`

	Summary             string `db:"summary"`
	ConditionAssessment string `db:"condition_assessment"`
	AuthenticityCheck   string `db:"authenticity_check"`
	Recommendation      string `db:"recommendation"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgReport) ToDomain() (*domain.Report, error) {
	var defects []string
	if len(p.Defects) > 0 {
		if err := json.Unmarshal(p.Defects, &defects); err != nil {
			return nil, fmt.Errorf("could not unmarshal defects: %w", err)
		}
	}

	return &domain.Report{
		ID:                  domain.ReportID(p.ID),
		JobID:               domain.JobID(p.JobID),
		ScoutID:             domain.UserID(p.ScoutID),
		ConditionGrade:      p.ConditionGrade,
		Defects:             defects,
		MarketPriceMin:      p.MarketPriceMin,
		MarketPriceMax:      p.MarketPriceMax,
		Summary:             p.Summary,
		ConditionAssessment: p.ConditionAssessment,
		AuthenticityCheck:   p.AuthenticityCheck,
		Recommendation:      domain.ReportRecommendation(p.Recommendation),
		CreatedAt:           p.CreatedAt,
	}, nil
}

func (p *PgReport) FromDomain(report domain.Report) error {
	defects, err := json.Marshal(report.Defects)
	if err != nil {
		return fmt.Errorf("could not marshal defects: %w", err)
	}

	*p = PgReport{
		ID:                  uuid.UUID(report.ID),
		JobID:               uuid.UUID(report.JobID),
		ScoutID:             uuid.UUID(report.ScoutID),
		ConditionGrade:      report.ConditionGrade,
		Defects:             defects,
		MarketPriceMin:      report.MarketPriceMin,
		MarketPriceMax:      report.MarketPriceMax,
		Summary:             report.Summary,
		ConditionAssessment: report.ConditionAssessment,
		AuthenticityCheck:   report.AuthenticityCheck,
		Recommendation:      string(report.Recommendation),
		CreatedAt:           report.CreatedAt,
	}

	return nil
}

// PgPayment is the row shape of the payments table.
type PgPayment struct {
	ID    uuid.UUID `db:"id" goqu:"skipinsert"`
	JobID uuid.UUID `db:"job_id"`

	GatewayIntentID string `db:"gateway_intent_id"`
	Status          string `db:"status"`

	BuyerAmount decimal.Decimal `db:"buyer_amount"`
	PlatformFee decimal.Decimal `db:"platform_fee"`
	ScoutPayout decimal.Decimal `db:"scout_payout"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPayment) ToDomain() *domain.Payment {
	return &domain.Payment{
		ID:              domain.PaymentID(p.ID),
		JobID:           domain.JobID(p.JobID),
		GatewayIntentID: p.GatewayIntentID,
		Status:          domain.PaymentStatus(p.Status),
		BuyerAmount:     p.BuyerAmount,
		PlatformFee:     p.PlatformFee,
		ScoutPayout:     p.ScoutPayout,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgPayment) FromDomain(payment domain.Payment) {
	*p = PgPayment{
		ID:              uuid.UUID(payment.ID),
		JobID:           uuid.UUID(payment.JobID),
		GatewayIntentID: payment.GatewayIntentID,
		Status:          string(payment.Status),
		BuyerAmount:     payment.BuyerAmount,
		PlatformFee:     payment.PlatformFee,
		ScoutPayout:     payment.ScoutPayout,
		CreatedAt:       payment.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  payment.UpdatedAt,
			Valid: !payment.UpdatedAt.IsZero(),
		},
	}
}
