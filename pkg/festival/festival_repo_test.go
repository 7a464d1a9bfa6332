package festival

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/festperfect/festperfect/internal/test_utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	container, open := test_utils.TestWithDB()
	db = open()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func storedFestival(t *testing.T, repo *FestivalRepoImpl) Festival {
	t.Helper()
	festival := validFestival()
	festival.ID = uuid.NewString()
	festival.ContactInfo = &ContactInfo{Name: "Sam", Phone: "+1 555 0100"}
	festival.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	festival.UpdatedAt = festival.CreatedAt
	err := repo.Store(context.Background(), festival)
	assert.NoError(t, err)
	return festival
}

func TestFestivalRepoImpl_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewFestivalRepo(db)

	festival := storedFestival(t, repo)

	stored, err := repo.Get(ctx, festival.ID)
	assert.NoError(t, err)
	assert.Equal(t, festival.Name, stored.Name)
	assert.Len(t, stored.Days, 1)
	assert.Equal(t, festival.Days[0].Date, stored.Days[0].Date)
	assert.Len(t, stored.Days[0].Stages, 2)
	assert.Equal(t, "Main Stage", stored.Days[0].Stages[0].Name)
	assert.Len(t, stored.Artists, 2)
	assert.NotNil(t, stored.ContactInfo)
	assert.Equal(t, "Sam", stored.ContactInfo.Name)
}

func TestFestivalRepoImpl_GetNotFound(t *testing.T) {
	repo := NewFestivalRepo(db)
	_, err := repo.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrFestivalNotFound)
}

func TestFestivalRepoImpl_UpdateArtistPriority(t *testing.T) {
	ctx := context.Background()
	repo := NewFestivalRepo(db)
	festival := storedFestival(t, repo)

	updatedAt := festival.UpdatedAt.Add(time.Minute)
	ok, err := repo.UpdateArtistPriority(ctx, festival.ID, "a1", PriorityMust, updatedAt)
	assert.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.Get(ctx, festival.ID)
	assert.NoError(t, err)
	slot, found := stored.FindArtist("a1")
	assert.True(t, found)
	assert.Equal(t, PriorityMust, slot.Priority)
	assert.Equal(t, updatedAt.UTC(), stored.UpdatedAt.UTC())

	ok, err = repo.UpdateArtistPriority(ctx, festival.ID, "ghost", PriorityMust, updatedAt)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFestivalRepoImpl_UpdateContactInfo(t *testing.T) {
	ctx := context.Background()
	repo := NewFestivalRepo(db)
	festival := storedFestival(t, repo)

	info := ContactInfo{Name: "Alex", Phone: "+1 555 0199", AlternateContact: "alt@example.com"}
	ok, err := repo.UpdateContactInfo(ctx, festival.ID, info, time.Now())
	assert.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.Get(ctx, festival.ID)
	assert.NoError(t, err)
	assert.NotNil(t, stored.ContactInfo)
	assert.Equal(t, info, *stored.ContactInfo)

	ok, err = repo.UpdateContactInfo(ctx, uuid.NewString(), info, time.Now())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFestivalRepoImpl_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewFestivalRepo(db)
	festival := storedFestival(t, repo)

	deleted, err := repo.Delete(ctx, festival.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Get(ctx, festival.ID)
	assert.ErrorIs(t, err, ErrFestivalNotFound)

	deleted, err = repo.Delete(ctx, festival.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
