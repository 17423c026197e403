package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lumenworks/backend/internal/model"
	"github.com/lumenworks/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockContactRepository is a function-field stub.
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	listFunc   func(ctx context.Context, limit int) ([]*model.Contact, error)
	getFunc    func(ctx context.Context, id string) (*model.Contact, error)
	createFunc func(ctx context.Context, c *model.Contact) error
	updateFunc func(ctx context.Context, c *model.Contact) error
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockContactRepository) List(ctx context.Context, limit int) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockContactRepository) Create(ctx context.Context, c *model.Contact) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) Update(ctx context.Context, c *model.Contact) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestContactService_Create_DefaultsStatusToNew(t *testing.T) {
	var saved *model.Contact
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, c *model.Contact) error {
			saved = c
			return nil
		},
	}
	svc := NewContactService(mock)

	c := &model.Contact{FullName: "Alice", Email: "alice@example.com", Message: "Hi"}
	if err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected Create to reach the repository")
	}
	if saved.Status != model.ContactStatusNew {
		t.Errorf("expected status=new, got %q", saved.Status)
	}
}

// TestContactService_Create_InvalidNeverPersisted verifies validation runs
// before the store is touched and reports every violation.
func TestContactService_Create_InvalidNeverPersisted(t *testing.T) {
	called := false
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, c *model.Contact) error {
			called = true
			return nil
		},
	}
	svc := NewContactService(mock)

	c := &model.Contact{FullName: "", Email: "bad", Message: ""}
	err := svc.Create(context.Background(), c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *model.ValidationError, got %T", err)
	}
	if len(ve.Violations) < 3 {
		t.Errorf("expected violations for fullName, email and message, got %v", ve.Violations)
	}
	if called {
		t.Error("repository must not be called for an invalid payload")
	}
}

func TestContactService_Create_RepositoryError(t *testing.T) {
	mock := &mockContactRepository{
		createFunc: func(ctx context.Context, c *model.Contact) error {
			return errors.New("db write failed")
		},
	}
	svc := NewContactService(mock)

	c := &model.Contact{FullName: "A", Email: "a@example.com", Message: "Hi"}
	if err := svc.Create(context.Background(), c); err == nil {
		t.Error("expected error from repository, got nil")
	}
}

// ---------------------------------------------------------------------------
// Update tests
// ---------------------------------------------------------------------------

func TestContactService_Update_RejectsUnknownStatus(t *testing.T) {
	called := false
	mock := &mockContactRepository{
		updateFunc: func(ctx context.Context, c *model.Contact) error {
			called = true
			return nil
		},
	}
	svc := NewContactService(mock)

	c := &model.Contact{
		ID: "some-id", FullName: "A", Email: "a@example.com",
		Message: "Hi", Status: "archived",
	}
	err := svc.Update(context.Background(), c)
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for status=archived, got %v", err)
	}
	if called {
		t.Error("repository must not be called for an invalid status")
	}
}

func TestContactService_Update_AllowsStatusReplied(t *testing.T) {
	var saved *model.Contact
	mock := &mockContactRepository{
		updateFunc: func(ctx context.Context, c *model.Contact) error {
			saved = c
			return nil
		},
	}
	svc := NewContactService(mock)

	c := &model.Contact{
		ID: "some-id", FullName: "A", Email: "a@example.com",
		Message: "Hi", Status: model.ContactStatusReplied,
	}
	if err := svc.Update(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.Status != model.ContactStatusReplied {
		t.Errorf("expected status=replied persisted, got %+v", saved)
	}
}

func TestContactService_Update_NotFoundPropagates(t *testing.T) {
	mock := &mockContactRepository{
		updateFunc: func(ctx context.Context, c *model.Contact) error {
			return repository.ErrNotFound
		},
	}
	svc := NewContactService(mock)

	c := &model.Contact{
		ID: "gone", FullName: "A", Email: "a@example.com",
		Message: "Hi", Status: model.ContactStatusNew,
	}
	if err := svc.Update(context.Background(), c); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Delete tests
// ---------------------------------------------------------------------------

func TestContactService_List_ForwardsLimit(t *testing.T) {
	var capturedLimit int
	mock := &mockContactRepository{
		listFunc: func(ctx context.Context, limit int) ([]*model.Contact, error) {
			capturedLimit = limit
			return []*model.Contact{}, nil
		},
	}
	svc := NewContactService(mock)

	if _, err := svc.List(context.Background(), 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedLimit != 25 {
		t.Errorf("expected limit=25 forwarded, got %d", capturedLimit)
	}
}

func TestContactService_Delete_Forwards(t *testing.T) {
	var capturedID string
	mock := &mockContactRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			capturedID = id
			return nil
		},
	}
	svc := NewContactService(mock)

	if err := svc.Delete(context.Background(), "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capturedID != "abc" {
		t.Errorf("expected id=abc forwarded, got %q", capturedID)
	}
}
