package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polymath-backend/internal/config"
	"polymath-backend/internal/domains/note"
	noterepo "polymath-backend/internal/domains/note/repository"
	"polymath-backend/internal/domains/subject"
	subjectrepo "polymath-backend/internal/domains/subject/repository"
	"polymath-backend/internal/infrastructure/database"
)

type testEnv struct {
	notes    note.Service
	subjects subject.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "polymath.db"),
		BusyTimeout: 5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	subjects := subjectrepo.NewSQLiteRepository(db.SQL)

	return &testEnv{
		notes:    NewNoteService(noterepo.NewSQLiteRepository(db.SQL), subjects),
		subjects: subjects,
	}
}

func (e *testEnv) createSubject(t *testing.T, name string) *subject.Subject {
	t.Helper()

	created, err := e.subjects.Create(context.Background(), &subject.Subject{Name: name})
	require.NoError(t, err)
	return created
}

func setField(t *testing.T, f interface{ UnmarshalJSON([]byte) error }, raw string) {
	t.Helper()
	require.NoError(t, f.UnmarshalJSON([]byte(raw)))
}

func TestCreateNote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	req := &note.CreateNoteRequest{SubjectID: subj.ID, Title: "Kinematics"}
	setField(t, &req.ContentJSON, `"{\"blocks\":[]}"`)

	created, err := env.notes.Create(ctx, req)
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, subj.ID, created.SubjectID)
	assert.Equal(t, `{"blocks":[]}`, created.ContentJSON)
}

func TestCreateNoteDefaultsContent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	created, err := env.notes.Create(ctx, &note.CreateNoteRequest{
		SubjectID: subj.ID,
		Title:     "Empty note",
	})
	require.NoError(t, err)
	assert.Equal(t, "{}", created.ContentJSON)
}

func TestCreateNoteMissingSubject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.notes.Create(ctx, &note.CreateNoteRequest{
		SubjectID: 99999,
		Title:     "Orphan",
	})
	assert.ErrorIs(t, err, note.ErrSubjectNotFound)

	// Nothing may be persisted after the failed create.
	count, err := env.notes.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreateNoteInvalidTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	_, err := env.notes.Create(ctx, &note.CreateNoteRequest{SubjectID: subj.ID, Title: ""})
	assert.ErrorIs(t, err, note.ErrInvalidTitle)

	_, err = env.notes.Create(ctx, &note.CreateNoteRequest{
		SubjectID: subj.ID,
		Title:     strings.Repeat("a", note.MaxTitleLength+1),
	})
	assert.ErrorIs(t, err, note.ErrTitleTooLong)
}

func TestCreateNoteInvalidContent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	req := &note.CreateNoteRequest{SubjectID: subj.ID, Title: "Broken"}
	setField(t, &req.ContentJSON, `"{not json"`)

	_, err := env.notes.Create(ctx, req)
	assert.ErrorIs(t, err, note.ErrInvalidContentJSON)
}

func TestListBySubjectCreationOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	for _, title := range []string{"C", "A", "B"} {
		_, err := env.notes.Create(ctx, &note.CreateNoteRequest{SubjectID: subj.ID, Title: title})
		require.NoError(t, err)
	}

	notes, err := env.notes.ListBySubject(ctx, subj.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "C", notes[0].Title)
	assert.Equal(t, "A", notes[1].Title)
	assert.Equal(t, "B", notes[2].Title)
}

func TestListBySubjectMissingSubject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.notes.ListBySubject(ctx, 99999)
	assert.ErrorIs(t, err, note.ErrSubjectNotFound)
}

func TestUpdateNotePartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	created, err := env.notes.Create(ctx, &note.CreateNoteRequest{
		SubjectID: subj.ID,
		Title:     "Draft",
	})
	require.NoError(t, err)

	// Only the content is sent; title must survive.
	var req note.UpdateNoteRequest
	setField(t, &req.ContentJSON, `"{\"blocks\":[1]}"`)

	updated, err := env.notes.Update(ctx, created.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, "Draft", updated.Title)
	assert.Equal(t, `{"blocks":[1]}`, updated.ContentJSON)
}

func TestUpdateNoteInvalidContentLeavesNoteUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	created, err := env.notes.Create(ctx, &note.CreateNoteRequest{
		SubjectID: subj.ID,
		Title:     "Stable",
	})
	require.NoError(t, err)

	var req note.UpdateNoteRequest
	setField(t, &req.ContentJSON, `"{broken"`)

	_, err = env.notes.Update(ctx, created.ID, &req)
	assert.ErrorIs(t, err, note.ErrInvalidContentJSON)

	fetched, err := env.notes.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stable", fetched.Title)
	assert.Equal(t, "{}", fetched.ContentJSON)
}

func TestUpdateNoteNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	var req note.UpdateNoteRequest
	setField(t, &req.Title, `"New title"`)

	_, err := env.notes.Update(ctx, 99999, &req)
	assert.ErrorIs(t, err, note.ErrNoteNotFound)
}

func TestDeleteNote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")

	created, err := env.notes.Create(ctx, &note.CreateNoteRequest{
		SubjectID: subj.ID,
		Title:     "Short lived",
	})
	require.NoError(t, err)

	require.NoError(t, env.notes.Delete(ctx, created.ID))
	assert.ErrorIs(t, env.notes.Delete(ctx, created.ID), note.ErrNoteNotFound)
}

func TestSubjectDeleteCascadesToNotes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")
	other := env.createSubject(t, "Math")

	for _, title := range []string{"One", "Two"} {
		_, err := env.notes.Create(ctx, &note.CreateNoteRequest{SubjectID: subj.ID, Title: title})
		require.NoError(t, err)
	}
	kept, err := env.notes.Create(ctx, &note.CreateNoteRequest{SubjectID: other.ID, Title: "Kept"})
	require.NoError(t, err)

	require.NoError(t, env.subjects.Delete(ctx, subj.ID))

	count, err := env.notes.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = env.notes.GetByID(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestCountNotesBySubject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	subj := env.createSubject(t, "Physics")
	other := env.createSubject(t, "Math")

	for _, title := range []string{"One", "Two"} {
		_, err := env.notes.Create(ctx, &note.CreateNoteRequest{SubjectID: subj.ID, Title: title})
		require.NoError(t, err)
	}
	_, err := env.notes.Create(ctx, &note.CreateNoteRequest{SubjectID: other.ID, Title: "Three"})
	require.NoError(t, err)

	total, err := env.notes.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	filtered, err := env.notes.Count(ctx, &subj.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), filtered)
}
