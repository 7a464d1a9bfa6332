package share

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/festperfect/festperfect/internal/test_utils"
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

func TestShareRepoImpl_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewShareRepo(db)

	shareID, err := NewShareID()
	assert.NoError(t, err)

	plan := SharedPlan{
		ShareID:    shareID,
		FestivalID: "fest-1",
		Snapshot:   sharedTestFestival(),
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
	assert.NoError(t, repo.Store(ctx, plan))

	loaded, err := repo.Get(ctx, shareID)
	assert.NoError(t, err)
	assert.Equal(t, shareID, loaded.ShareID)
	assert.Equal(t, "fest-1", loaded.FestivalID)
	assert.Equal(t, "Test Fest", loaded.Snapshot.Name)
	assert.Len(t, loaded.Snapshot.Artists, 1)
	assert.Equal(t, plan.CreatedAt, loaded.CreatedAt.UTC())
}

func TestShareRepoImpl_GetNotFound(t *testing.T) {
	repo := NewShareRepo(db)
	_, err := repo.Get(context.Background(), "ZZZZZZZZ")
	assert.ErrorIs(t, err, ErrShareNotFound)
}
