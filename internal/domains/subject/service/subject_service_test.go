package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polymath-backend/internal/config"
	"polymath-backend/internal/domains/subject"
	"polymath-backend/internal/domains/subject/repository"
	"polymath-backend/internal/infrastructure/database"
)

func newTestService(t *testing.T) subject.Service {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "polymath.db"),
		BusyTimeout: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	return NewSubjectService(repository.NewSQLiteRepository(db.SQL))
}

func strPtr(s string) *string {
	return &s
}

func TestCreateSubject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &subject.CreateSubjectRequest{
		Name:        "Physics",
		Description: strPtr("Classical mechanics"),
	})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Physics", created.Name)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "Classical mechanics", *fetched.Description)
}

func TestCreateSubjectTrimsName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: "  Math  "})
	require.NoError(t, err)
	assert.Equal(t, "Math", created.Name)
}

func TestCreateSubjectRejectsBlankName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: "   "})
	assert.ErrorIs(t, err, subject.ErrInvalidName)
}

func TestCreateSubjectRejectsLongName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &subject.CreateSubjectRequest{
		Name: strings.Repeat("a", subject.MaxNameLength+1),
	})
	assert.ErrorIs(t, err, subject.ErrNameTooLong)
}

func TestCreateSubjectDuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: "Physics"})
	require.NoError(t, err)

	// Trimming makes "  Physics " collide with the stored name.
	_, err = svc.Create(ctx, &subject.CreateSubjectRequest{Name: "  Physics "})
	assert.ErrorIs(t, err, subject.ErrDuplicateName)
}

func TestGetAllOrderedByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Chemistry", "Art", "Biology"} {
		_, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: name})
		require.NoError(t, err)
	}

	subjects, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "Art", subjects[0].Name)
	assert.Equal(t, "Biology", subjects[1].Name)
	assert.Equal(t, "Chemistry", subjects[2].Name)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 99999)
	assert.ErrorIs(t, err, subject.ErrSubjectNotFound)
}

func TestUpdateSubjectPartial(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &subject.CreateSubjectRequest{
		Name:        "Physics",
		Description: strPtr("old description"),
	})
	require.NoError(t, err)

	// Only the name is sent; description must survive.
	var req subject.UpdateSubjectRequest
	require.NoError(t, req.Name.UnmarshalJSON([]byte(`"Applied Physics"`)))

	updated, err := svc.Update(ctx, created.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, "Applied Physics", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "old description", *updated.Description)
}

func TestUpdateSubjectClearsDescriptionWithNull(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &subject.CreateSubjectRequest{
		Name:        "Physics",
		Description: strPtr("to be removed"),
	})
	require.NoError(t, err)

	var req subject.UpdateSubjectRequest
	require.NoError(t, req.Description.UnmarshalJSON([]byte(`null`)))

	updated, err := svc.Update(ctx, created.ID, &req)
	require.NoError(t, err)
	assert.Nil(t, updated.Description)

	fetched, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Description)
}

func TestUpdateSubjectRejectsNullName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: "Physics"})
	require.NoError(t, err)

	var req subject.UpdateSubjectRequest
	require.NoError(t, req.Name.UnmarshalJSON([]byte(`null`)))

	_, err = svc.Update(ctx, created.ID, &req)
	assert.ErrorIs(t, err, subject.ErrInvalidName)
}

func TestUpdateSubjectDuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: "Physics"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: "Math"})
	require.NoError(t, err)

	var req subject.UpdateSubjectRequest
	require.NoError(t, req.Name.UnmarshalJSON([]byte(`"Physics"`)))

	_, err = svc.Update(ctx, second.ID, &req)
	assert.ErrorIs(t, err, subject.ErrDuplicateName)
}

func TestUpdateSubjectNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var req subject.UpdateSubjectRequest
	require.NoError(t, req.Name.UnmarshalJSON([]byte(`"Physics"`)))

	_, err := svc.Update(ctx, 99999, &req)
	assert.ErrorIs(t, err, subject.ErrSubjectNotFound)
}

func TestDeleteSubject(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: "Physics"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	// A second delete of the same id reports not found.
	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, subject.ErrSubjectNotFound)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, subject.ErrSubjectNotFound)
}

func TestCountSubjects(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for _, name := range []string{"Physics", "Math"} {
		_, err := svc.Create(ctx, &subject.CreateSubjectRequest{Name: name})
		require.NoError(t, err)
	}

	count, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
