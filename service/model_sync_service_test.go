package service

import (
	"context"
	"errors"
	"testing"

	"wb-labels/models"
)

// fakeModelRepo tracks registered SKUs for sync tests
type fakeModelRepo struct {
	existing  map[string]bool
	created   []*models.CreateModelRequest
	createErr error
	existsErr error
}

func (f *fakeModelRepo) GetAll(ctx context.Context) ([]models.ModelRecord, error) { return nil, nil }
func (f *fakeModelRepo) GetByBrandAndPlatform(ctx context.Context, brand, platform string) ([]models.ModelRecord, error) {
	return nil, nil
}
func (f *fakeModelRepo) GetRegistered(ctx context.Context, brand, platform string) ([]models.RegisteredModel, error) {
	return nil, nil
}

func (f *fakeModelRepo) ExistsBySku(ctx context.Context, sku string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[sku], nil
}

func (f *fakeModelRepo) Create(ctx context.Context, req *models.CreateModelRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}

func TestSyncModelsFromWB(t *testing.T) {
	modelRepo := &fakeModelRepo{existing: map[string]bool{"2000000000017": true}}
	svc := NewModelSyncService(
		&fakeTokenRepo{tokens: map[string]string{"ARM2/wb/content": "token"}},
		modelRepo,
		&fakeWBClient{cards: testCatalog()},
	)

	inserted, skipped, total, err := svc.SyncModelsFromWB(context.Background(), "ARM2", "wb", "content")
	if err != nil {
		t.Fatalf("SyncModelsFromWB() error = %v", err)
	}

	// testCatalog has three (card, size) pairs; one SKU pre-exists
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if inserted != 2 {
		t.Errorf("inserted = %d, want 2", inserted)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}

	if len(modelRepo.created) != 2 {
		t.Fatalf("repo received %d creates, want 2", len(modelRepo.created))
	}
	first := modelRepo.created[0]
	if first.Sku != "2000000000024" || first.Article != "123ABC" || first.Size != "40-41" {
		t.Errorf("unexpected first create %+v", first)
	}
	if first.Brand != "ARM2" || first.Platform != "wb" {
		t.Errorf("create scope = %s/%s, want ARM2/wb", first.Brand, first.Platform)
	}
	if first.Gender != "мужской" || first.Category != "Тапочки" {
		t.Errorf("normalized attributes not carried: %+v", first)
	}
}

func TestSyncModelsFromWBTokenMissing(t *testing.T) {
	svc := NewModelSyncService(&fakeTokenRepo{}, &fakeModelRepo{}, &fakeWBClient{})

	_, _, _, err := svc.SyncModelsFromWB(context.Background(), "ARM2", "wb", "content")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("SyncModelsFromWB() error = %v, want %v", err, ErrTokenNotFound)
	}
}

func TestSyncModelsFromWBInsertFailuresSkipped(t *testing.T) {
	modelRepo := &fakeModelRepo{createErr: errors.New("duplicate key")}
	svc := NewModelSyncService(
		&fakeTokenRepo{tokens: map[string]string{"ARM2/wb/content": "token"}},
		modelRepo,
		&fakeWBClient{cards: testCatalog()},
	)

	inserted, skipped, total, err := svc.SyncModelsFromWB(context.Background(), "ARM2", "wb", "content")
	if err != nil {
		t.Fatalf("per-item insert failures must not abort the sync: %v", err)
	}
	if inserted != 0 || skipped != 3 || total != 3 {
		t.Errorf("inserted/skipped/total = %d/%d/%d, want 0/3/3", inserted, skipped, total)
	}
}
