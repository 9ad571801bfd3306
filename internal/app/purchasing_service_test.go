package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ocastro/autoglass-mis/internal/app"
	"github.com/ocastro/autoglass-mis/internal/domain"
	"github.com/ocastro/autoglass-mis/internal/domain/purchasing"
)

func TestPurchasingService_CreateOrder_InvalidDraftSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{
		createFn: func(context.Context, *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error) {
			t.Fatal("repository called for invalid draft")
			return nil, nil
		},
	}

	svc := app.NewPurchasingService(repo, testLogger())
	_, err := svc.CreateOrder(context.Background(), &purchasing.PurchaseOrder{
		SupplierID: 1,
		UserID:     1,
		// No items.
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("CreateOrder() = %v, want ErrValidation", err)
	}
}

func TestPurchasingService_CreateOrder(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{
		createFn: func(_ context.Context, draft *purchasing.PurchaseOrder) (*purchasing.PurchaseOrder, error) {
			created := *draft
			created.ID = 3
			created.Number = "PO-0003"
			created.Status = purchasing.StatusPending
			return &created, nil
		},
	}

	svc := app.NewPurchasingService(repo, testLogger())
	created, err := svc.CreateOrder(context.Background(), &purchasing.PurchaseOrder{
		SupplierID: 1,
		UserID:     1,
		Items:      []purchasing.Item{{ProductID: 10, Quantity: 5, UnitPrice: 40}},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error: %v", err)
	}
	if created.Number != "PO-0003" {
		t.Errorf("Number = %q, want PO-0003", created.Number)
	}
	if created.Status != purchasing.StatusPending {
		t.Errorf("Status = %q, want pending", created.Status)
	}
}

func TestPurchasingService_UpdateStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		next    purchasing.Status
		repoErr error
		wantErr error
	}{
		{
			name: "valid transition",
			next: purchasing.StatusApproved,
		},
		{
			name:    "unknown status value",
			next:    purchasing.Status("shipped"),
			wantErr: domain.ErrValidation,
		},
		{
			name:    "illegal transition",
			next:    purchasing.StatusDelivered,
			repoErr: domain.ErrConflict,
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &stubOrderRepo{
				updateStatusFn: func(_ context.Context, id int64, next purchasing.Status) (*purchasing.PurchaseOrder, error) {
					if tt.repoErr != nil {
						return nil, tt.repoErr
					}
					return &purchasing.PurchaseOrder{ID: id, Number: "PO-0001", Status: next}, nil
				},
			}

			svc := app.NewPurchasingService(repo, testLogger())
			updated, err := svc.UpdateStatus(context.Background(), 1, tt.next)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpdateStatus() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("UpdateStatus() error: %v", err)
			}
			if updated.Status != tt.next {
				t.Errorf("Status = %q, want %q", updated.Status, tt.next)
			}
		})
	}
}
