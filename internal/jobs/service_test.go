package jobs_test

import (
	"context"
	"errors"
	"safescout/internal/jobs"
	"testing"
	"time"

	mockstorage "safescout/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"safescout/pkg/domain"
	"safescout/pkg/serrors"
	"safescout/pkg/storage"
)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, jobs.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := jobs.New(st, jobs.Options{RiskMaxAttempts: 5})

	return ctrl, st, s
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func validCreateReq() jobs.CreateReq {
	return jobs.CreateReq{
		Tier:                 domain.TierStandard,
		ListingURL:           "https://www.ebay.com/itm/12345",
		Marketplace:          domain.MarketplaceEbay,
		ItemTitle:            "Canon AE-1 film camera",
		ItemPrice:            decimal.NewFromInt(450),
		ItemPhotos:           []string{"https://cdn.example.com/p1.jpg"},
		SellerAccountAgeDays: 200,
	}
}

func TestService_Create_StoresJobAndEnqueuesRisk(t *testing.T) {
	ctrl, st, s := newTestService(t)

	buyerID := domain.UserID(uuid.New())
	buyer := domain.Identity{UserID: buyerID, Role: domain.RoleBuyer}
	req := validCreateReq()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job domain.Job) (*domain.Job, error) {
				if job.Status != domain.JobStatusCreated {
					t.Fatalf("expected status CREATED, got %s", job.Status)
				}
				if !job.TotalFee.Equal(decimal.RequireFromString("39")) {
					t.Fatalf("expected total fee 39, got %s", job.TotalFee)
				}
				if !job.ScoutFee.Equal(decimal.RequireFromString("25.35")) {
					t.Fatalf("expected scout fee 25.35, got %s", job.ScoutFee)
				}
				job.ID = domain.JobID(uuid.New())

				return &job, nil
			},
		)
		tx.EXPECT().AddQueueJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args interface{ Kind() string }, _ any) (bool, error) {
				if args.Kind() != "AssessJobRisk" {
					t.Fatalf("unexpected queue job kind %q", args.Kind())
				}

				return true, nil
			},
		)
	})

	job, err := s.Create(context.Background(), buyer, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job == nil || job.BuyerID != buyerID {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.Risk != nil {
		t.Fatalf("expected no risk verdict on a fresh job")
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	cases := map[string]func(*jobs.CreateReq){
		"unknown tier":    func(r *jobs.CreateReq) { r.Tier = "PREMIUM" },
		"invalid url":     func(r *jobs.CreateReq) { r.ListingURL = "not a url" },
		"bad scheme":      func(r *jobs.CreateReq) { r.ListingURL = "ftp://example.com/x" },
		"bad marketplace": func(r *jobs.CreateReq) { r.Marketplace = "CRAIGSLIST" },
		"empty title":     func(r *jobs.CreateReq) { r.ItemTitle = "" },
		"negative price":  func(r *jobs.CreateReq) { r.ItemPrice = decimal.NewFromInt(-1) },
		"no photos":       func(r *jobs.CreateReq) { r.ItemPhotos = nil },
		"negative seller": func(r *jobs.CreateReq) { r.SellerAccountAgeDays = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, st, s := newTestService(t)
			st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

			req := validCreateReq()
			mutate(&req)

			_, err := s.Create(context.Background(),
				domain.Identity{UserID: domain.UserID(uuid.New()), Role: domain.RoleBuyer}, req)
			if !errors.Is(err, serrors.ErrBadRequest) {
				t.Fatalf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestService_Create_RejectsNonBuyers(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleScout, domain.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			_, st, s := newTestService(t)
			st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

			_, err := s.Create(context.Background(),
				domain.Identity{UserID: domain.UserID(uuid.New()), Role: role}, validCreateReq())
			if !errors.Is(err, serrors.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestService_Create_PropagatesStoreError(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreJob(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})

	buyer := domain.Identity{UserID: domain.UserID(uuid.New()), Role: domain.RoleBuyer}
	if _, err := s.Create(context.Background(), buyer, validCreateReq()); err == nil {
		t.Fatalf("expected error from StoreJob")
	}
}

func TestService_JobByID_Visibility(t *testing.T) {
	buyerID := domain.UserID(uuid.New())
	scoutID := domain.UserID(uuid.New())
	strangerID := domain.UserID(uuid.New())
	jobID := domain.JobID(uuid.New())

	job := domain.Job{ID: jobID, BuyerID: buyerID, ScoutID: &scoutID, Status: domain.JobStatusScoutAssigned}

	cases := map[string]struct {
		actor   domain.Identity
		wantErr bool
	}{
		"buyer sees own job":    {domain.Identity{UserID: buyerID, Role: domain.RoleBuyer}, false},
		"scout sees assignment": {domain.Identity{UserID: scoutID, Role: domain.RoleScout}, false},
		"admin sees everything": {domain.Identity{UserID: strangerID, Role: domain.RoleAdmin}, false},
		"stranger gets 404":     {domain.Identity{UserID: strangerID, Role: domain.RoleBuyer}, true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, st, s := newTestService(t)
			st.EXPECT().JobByID(gomock.Any(), jobID).Return(&job, nil)

			res, err := s.JobByID(context.Background(), tc.actor, jobID)
			if tc.wantErr {
				if !errors.Is(err, serrors.ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}

				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.ID != jobID {
				t.Fatalf("unexpected job: %+v", res)
			}
		})
	}
}

func TestService_BuyerJobs_Pagination(t *testing.T) {
	_, st, s := newTestService(t)

	buyerID := domain.UserID(uuid.New())
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	next := cursorTime.Add(-time.Minute)
	page := storage.JobPage{
		Jobs:       []domain.Job{{ItemTitle: "a"}},
		NextCursor: &next,
	}

	st.EXPECT().BuyerJobs(gomock.Any(), buyerID, cursorTime, uint(10)).Return(page, nil)

	res, nextCursor, err := s.BuyerJobs(context.Background(), buyerID, cursorTime.Format(time.RFC3339), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].ItemTitle != "a" {
		t.Fatalf("unexpected jobs: %+v", res)
	}
	if nextCursor == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestService_BuyerJobs_InvalidCursor(t *testing.T) {
	_, _, s := newTestService(t)

	_, _, err := s.BuyerJobs(context.Background(), domain.UserID(uuid.New()), "not-a-time", 5)
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestService_ScoutListings(t *testing.T) {
	_, st, s := newTestService(t)

	scoutID := domain.UserID(uuid.New())
	page := storage.JobPage{Jobs: []domain.Job{{ItemTitle: "open"}, {ItemTitle: "mine"}}}

	st.EXPECT().ScoutListings(gomock.Any(), scoutID, time.Time{}, uint(20)).Return(page, nil)

	res, next, err := s.ScoutListings(context.Background(), scoutID, "", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("unexpected jobs: %+v", res)
	}
	if next != "" {
		t.Fatalf("expected empty next cursor, got %q", next)
	}
}

func TestService_Assign(t *testing.T) {
	scoutID := domain.UserID(uuid.New())
	jobID := domain.JobID(uuid.New())
	scoutActor := domain.Identity{UserID: scoutID, Role: domain.RoleScout}

	t.Run("success", func(t *testing.T) {
		_, st, s := newTestService(t)
		assigned := domain.Job{ID: jobID, ScoutID: &scoutID, Status: domain.JobStatusScoutAssigned}
		st.EXPECT().TryAssignScout(gomock.Any(), jobID, scoutID).Return(&assigned, nil)

		job, err := s.Assign(context.Background(), scoutActor, jobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != domain.JobStatusScoutAssigned {
			t.Fatalf("expected SCOUT_ASSIGNED, got %s", job.Status)
		}
	})

	t.Run("buyer forbidden", func(t *testing.T) {
		_, _, s := newTestService(t)
		_, err := s.Assign(context.Background(), domain.Identity{UserID: scoutID, Role: domain.RoleBuyer}, jobID)
		if !errors.Is(err, serrors.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("already claimed is conflict", func(t *testing.T) {
		_, st, s := newTestService(t)
		other := domain.UserID(uuid.New())
		taken := domain.Job{ID: jobID, ScoutID: &other, Status: domain.JobStatusScoutAssigned}
		st.EXPECT().TryAssignScout(gomock.Any(), jobID, scoutID).Return(nil, nil)
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&taken, nil)

		_, err := s.Assign(context.Background(), scoutActor, jobID)
		if !errors.Is(err, serrors.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("missing job is not found", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().TryAssignScout(gomock.Any(), jobID, scoutID).Return(nil, nil)
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(nil, nil)

		_, err := s.Assign(context.Background(), scoutActor, jobID)
		if !errors.Is(err, serrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestService_Start(t *testing.T) {
	scoutID := domain.UserID(uuid.New())
	jobID := domain.JobID(uuid.New())
	actor := domain.Identity{UserID: scoutID, Role: domain.RoleScout}
	assigned := domain.Job{ID: jobID, ScoutID: &scoutID, Status: domain.JobStatusScoutAssigned}

	t.Run("success", func(t *testing.T) {
		_, st, s := newTestService(t)
		started := assigned
		started.Status = domain.JobStatusInProgress
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&assigned, nil)
		st.EXPECT().UpdateJobStatus(gomock.Any(), jobID,
			domain.JobStatusScoutAssigned, domain.JobStatusInProgress).Return(&started, nil)

		job, err := s.Start(context.Background(), actor, jobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != domain.JobStatusInProgress {
			t.Fatalf("expected IN_PROGRESS, got %s", job.Status)
		}
	})

	t.Run("another scout forbidden", func(t *testing.T) {
		_, st, s := newTestService(t)
		other := domain.UserID(uuid.New())
		theirs := domain.Job{ID: jobID, ScoutID: &other, Status: domain.JobStatusScoutAssigned}
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&theirs, nil)

		_, err := s.Start(context.Background(), actor, jobID)
		if !errors.Is(err, serrors.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("lost race is conflict", func(t *testing.T) {
		_, st, s := newTestService(t)
		verified := assigned
		verified.Status = domain.JobStatusVerified
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&assigned, nil)
		st.EXPECT().UpdateJobStatus(gomock.Any(), jobID,
			domain.JobStatusScoutAssigned, domain.JobStatusInProgress).Return(nil, nil)
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&verified, nil)

		_, err := s.Start(context.Background(), actor, jobID)
		if !errors.Is(err, serrors.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("already in progress is conflict", func(t *testing.T) {
		_, st, s := newTestService(t)
		inProgress := assigned
		inProgress.Status = domain.JobStatusInProgress
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&inProgress, nil)
		st.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.Start(context.Background(), actor, jobID)
		if !errors.Is(err, serrors.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestService_SubmitReport(t *testing.T) {
	scoutID := domain.UserID(uuid.New())
	jobID := domain.JobID(uuid.New())
	actor := domain.Identity{UserID: scoutID, Role: domain.RoleScout}
	inProgress := domain.Job{
		ID:        jobID,
		ScoutID:   &scoutID,
		ItemTitle: "Canon AE-1 film camera",
		Status:    domain.JobStatusInProgress,
	}
	req := jobs.ReportReq{
		ConditionGrade: "GOOD",
		Defects:        []string{"scratch on body"},
		MarketPriceMin: decimal.NewFromInt(400),
		MarketPriceMax: decimal.NewFromInt(500),
	}

	t.Run("success", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&inProgress, nil)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreReport(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, report domain.Report) (*domain.Report, error) {
					if report.Summary != "Verification summary for Canon AE-1 film camera" {
						t.Fatalf("unexpected summary %q", report.Summary)
					}
					if report.ConditionAssessment != "Condition reported as GOOD." {
						t.Fatalf("unexpected condition assessment %q", report.ConditionAssessment)
					}
					if report.Recommendation != domain.ReportRecommendationNegotiate {
						t.Fatalf("unexpected recommendation %s", report.Recommendation)
					}
					report.ID = domain.ReportID(uuid.New())

					return &report, nil
				},
			)
			verified := inProgress
			verified.Status = domain.JobStatusVerified
			tx.EXPECT().UpdateJobStatus(gomock.Any(), jobID,
				domain.JobStatusInProgress, domain.JobStatusVerified).Return(&verified, nil)
		})

		report, err := s.SubmitReport(context.Background(), actor, jobID, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.JobID != jobID || report.ScoutID != scoutID {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("invalid price range", func(t *testing.T) {
		_, _, s := newTestService(t)
		bad := req
		bad.MarketPriceMin = decimal.NewFromInt(600)

		_, err := s.SubmitReport(context.Background(), actor, jobID, bad)
		if !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest, got %v", err)
		}
	})

	t.Run("wrong state rolls back", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&inProgress, nil)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreReport(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, report domain.Report) (*domain.Report, error) {
					return &report, nil
				},
			)
			tx.EXPECT().UpdateJobStatus(gomock.Any(), jobID,
				domain.JobStatusInProgress, domain.JobStatusVerified).Return(nil, nil)
		})

		_, err := s.SubmitReport(context.Background(), actor, jobID, req)
		if !errors.Is(err, serrors.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("job not started is conflict", func(t *testing.T) {
		_, st, s := newTestService(t)
		assigned := inProgress
		assigned.Status = domain.JobStatusScoutAssigned
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&assigned, nil)
		st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.SubmitReport(context.Background(), actor, jobID, req)
		if !errors.Is(err, serrors.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestService_Cancel(t *testing.T) {
	buyerID := domain.UserID(uuid.New())
	jobID := domain.JobID(uuid.New())
	created := domain.Job{ID: jobID, BuyerID: buyerID, Status: domain.JobStatusCreated}

	t.Run("buyer cancels own job", func(t *testing.T) {
		_, st, s := newTestService(t)
		cancelled := created
		cancelled.Status = domain.JobStatusCancelled
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&created, nil)
		st.EXPECT().CancelJob(gomock.Any(), jobID).Return(&cancelled, nil)

		job, err := s.Cancel(context.Background(), domain.Identity{UserID: buyerID, Role: domain.RoleBuyer}, jobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != domain.JobStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", job.Status)
		}
	})

	t.Run("other buyer forbidden", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&created, nil)

		_, err := s.Cancel(context.Background(),
			domain.Identity{UserID: domain.UserID(uuid.New()), Role: domain.RoleBuyer}, jobID)
		if !errors.Is(err, serrors.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("terminal job is conflict", func(t *testing.T) {
		_, st, s := newTestService(t)
		completed := created
		completed.Status = domain.JobStatusCompleted
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&completed, nil)
		st.EXPECT().CancelJob(gomock.Any(), gomock.Any()).Times(0)

		_, err := s.Cancel(context.Background(), domain.Identity{UserID: buyerID, Role: domain.RoleBuyer}, jobID)
		if !errors.Is(err, serrors.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestService_Complete(t *testing.T) {
	jobID := domain.JobID(uuid.New())

	t.Run("success", func(t *testing.T) {
		_, st, s := newTestService(t)
		completed := domain.Job{ID: jobID, Status: domain.JobStatusCompleted}
		st.EXPECT().UpdateJobStatus(gomock.Any(), jobID,
			domain.JobStatusVerified, domain.JobStatusCompleted).Return(&completed, nil)

		job, err := s.Complete(context.Background(), jobID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != domain.JobStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", job.Status)
		}
	})

	t.Run("not verified is conflict", func(t *testing.T) {
		_, st, s := newTestService(t)
		inProgress := domain.Job{ID: jobID, Status: domain.JobStatusInProgress}
		st.EXPECT().UpdateJobStatus(gomock.Any(), jobID,
			domain.JobStatusVerified, domain.JobStatusCompleted).Return(nil, nil)
		st.EXPECT().JobByID(gomock.Any(), jobID).Return(&inProgress, nil)

		_, err := s.Complete(context.Background(), jobID)
		if !errors.Is(err, serrors.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}
