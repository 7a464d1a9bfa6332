package share

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/festperfect/festperfect/pkg/festival"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrShareNotFound = errors.New("shared plan not found")

type Repo interface {
	Store(ctx context.Context, plan SharedPlan) error
	Get(ctx context.Context, shareID string) (SharedPlan, error)
}

type ShareRepoImpl struct {
	db *pgxpool.Pool
}

func NewShareRepo(db *pgxpool.Pool) *ShareRepoImpl {
	return &ShareRepoImpl{db: db}
}

func (r *ShareRepoImpl) Store(ctx context.Context, plan SharedPlan) error {
	snapshot, err := json.Marshal(festival.FestivalToDTO(plan.Snapshot))
	if err != nil {
		return fmt.Errorf("failed to marshal festival snapshot: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO shared_plans (share_id, festival_id, snapshot, created_at) VALUES ($1, $2, $3, $4)`,
		plan.ShareID, plan.FestivalID, snapshot, plan.CreatedAt,
	)
	if err != nil {
		log.Errorf("failed to store shared plan: %v", err)
		return err
	}
	return nil
}

func (r *ShareRepoImpl) Get(ctx context.Context, shareID string) (SharedPlan, error) {
	var plan SharedPlan
	var snapshot []byte
	err := r.db.QueryRow(ctx,
		`SELECT share_id, festival_id, snapshot, created_at FROM shared_plans WHERE share_id = $1`,
		shareID,
	).Scan(&plan.ShareID, &plan.FestivalID, &snapshot, &plan.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return SharedPlan{}, ErrShareNotFound
	} else if err != nil {
		log.Errorf("failed to get shared plan: %v", err)
		return SharedPlan{}, err
	}

	var dto festival.FestivalDTO
	if err := json.Unmarshal(snapshot, &dto); err != nil {
		return SharedPlan{}, fmt.Errorf("failed to unmarshal festival snapshot: %w", err)
	}
	plan.Snapshot = festival.DTOToFestival(dto)
	return plan, nil
}
