package service

import (
	"context"
	"testing"

	"campushire/internal/models"
)

type userRepoStub struct {
	createFn          func(context.Context, *models.User) error
	getByExternalIDFn func(context.Context, string) (*models.User, error)
	updateFn          func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return s.getByExternalIDFn(ctx, externalID)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:          func(context.Context, *models.User) error { return nil },
		getByExternalIDFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		updateFn:          func(context.Context, *models.User) error { return nil },
	}
}

func TestUserServiceUpsertMissingFields(t *testing.T) {
	svc := NewUserService(noopUserRepo())

	_, err := svc.Upsert(context.Background(), UpsertUserInput{Name: "Jo", Role: "student"})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")

	_, err = svc.Upsert(context.Background(), UpsertUserInput{ExternalID: "ext-1", Role: "student"})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")

	_, err = svc.Upsert(context.Background(), UpsertUserInput{ExternalID: "ext-1", Name: "Jo"})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceUpsertMapsRecruiterToEmployer(t *testing.T) {
	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, u *models.User) error {
		created = u
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.Upsert(context.Background(), UpsertUserInput{
		ExternalID: "ext-1",
		Name:       "Casey",
		Role:       "recruiter",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created == nil {
		t.Fatal("expected a create for an unknown externalId")
	}
	if user.Role != models.UserRoleEmployer {
		t.Fatalf("expected employer role, got %s", user.Role)
	}
}

func TestUserServiceUpsertInvalidRole(t *testing.T) {
	svc := NewUserService(noopUserRepo())
	_, err := svc.Upsert(context.Background(), UpsertUserInput{
		ExternalID: "ext-1",
		Name:       "Casey",
		Role:       "admin",
	})
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceUpsertUpdatesExisting(t *testing.T) {
	externalID := "ext-1"
	oldEmail := "old@example.com"
	existing := &models.User{
		ID:         "user-1",
		ExternalID: &externalID,
		Name:       "Old Name",
		Email:      &oldEmail,
		Role:       models.UserRoleStudent,
	}

	var updated *models.User
	repo := noopUserRepo()
	repo.getByExternalIDFn = func(context.Context, string) (*models.User, error) {
		return existing, nil
	}
	repo.updateFn = func(_ context.Context, u *models.User) error {
		updated = u
		return nil
	}
	repo.createFn = func(context.Context, *models.User) error {
		t.Fatal("an existing user must be updated, not recreated")
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.Upsert(context.Background(), UpsertUserInput{
		ExternalID: "ext-1",
		Name:       "New Name",
		Email:      "new@example.com",
		Role:       "student",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if updated == nil {
		t.Fatal("expected an update")
	}
	if user.ID != "user-1" {
		t.Fatalf("identity must be stable across upserts, got %s", user.ID)
	}
	if user.Name != "New Name" || user.Email == nil || *user.Email != "new@example.com" {
		t.Fatalf("profile fields not refreshed: %#v", user)
	}
}
