package festival

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrFestivalNotFound = errors.New("festival not found")

type Repo interface {
	Store(ctx context.Context, festival Festival) error
	Get(ctx context.Context, festivalID string) (Festival, error)
	Delete(ctx context.Context, festivalID string) (bool, error)
	UpdateArtistPriority(ctx context.Context, festivalID, artistID string, priority Priority, updatedAt time.Time) (bool, error)
	UpdateContactInfo(ctx context.Context, festivalID string, info ContactInfo, updatedAt time.Time) (bool, error)
}

type FestivalRepoImpl struct {
	db *pgxpool.Pool
}

func NewFestivalRepo(db *pgxpool.Pool) *FestivalRepoImpl {
	return &FestivalRepoImpl{db: db}
}

func (r *FestivalRepoImpl) Store(ctx context.Context, festival Festival) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Errorf("failed to begin transaction: %v", err)
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO festivals (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		festival.ID, festival.Name, festival.CreatedAt, festival.UpdatedAt,
	)
	if err != nil {
		log.Errorf("failed to store festival: %v", err)
		return err
	}

	for dayPos, day := range festival.Days {
		_, err = tx.Exec(ctx,
			`INSERT INTO festival_days (id, festival_id, date, position) VALUES ($1, $2, $3, $4)`,
			day.ID, festival.ID, day.Date, dayPos,
		)
		if err != nil {
			log.Errorf("failed to store festival day: %v", err)
			return err
		}
		for stagePos, stage := range day.Stages {
			_, err = tx.Exec(ctx,
				`INSERT INTO stages (id, festival_day_id, name, color, position) VALUES ($1, $2, $3, $4, $5)`,
				stage.ID, day.ID, stage.Name, stage.Color, stagePos,
			)
			if err != nil {
				log.Errorf("failed to store stage: %v", err)
				return err
			}
		}
	}

	for _, slot := range festival.Artists {
		_, err = tx.Exec(ctx,
			`INSERT INTO artist_slots (id, festival_id, festival_day_id, stage_id, artist_name, start_time, end_time, priority)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			slot.ID, festival.ID, slot.DayID, slot.StageID, slot.ArtistName, slot.StartTime, slot.EndTime, string(slot.Priority),
		)
		if err != nil {
			log.Errorf("failed to store artist slot: %v", err)
			return err
		}
	}

	if festival.ContactInfo != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO contact_info (festival_id, name, phone, alternate_contact) VALUES ($1, $2, $3, $4)`,
			festival.ID, festival.ContactInfo.Name, festival.ContactInfo.Phone, festival.ContactInfo.AlternateContact,
		)
		if err != nil {
			log.Errorf("failed to store contact info: %v", err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *FestivalRepoImpl) Get(ctx context.Context, festivalID string) (Festival, error) {
	var festival Festival
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM festivals WHERE id = $1`,
		festivalID,
	).Scan(&festival.ID, &festival.Name, &festival.CreatedAt, &festival.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Festival{}, ErrFestivalNotFound
	} else if err != nil {
		log.Errorf("failed to get festival: %v", err)
		return Festival{}, err
	}

	days, err := r.loadDays(ctx, festivalID)
	if err != nil {
		return Festival{}, err
	}
	festival.Days = days

	artists, err := r.loadArtists(ctx, festivalID)
	if err != nil {
		return Festival{}, err
	}
	festival.Artists = artists

	var info ContactInfo
	err = r.db.QueryRow(ctx,
		`SELECT name, phone, alternate_contact FROM contact_info WHERE festival_id = $1`,
		festivalID,
	).Scan(&info.Name, &info.Phone, &info.AlternateContact)
	if err == nil {
		festival.ContactInfo = &info
	} else if !errors.Is(err, pgx.ErrNoRows) {
		log.Errorf("failed to get contact info: %v", err)
		return Festival{}, err
	}

	return festival, nil
}

func (r *FestivalRepoImpl) loadDays(ctx context.Context, festivalID string) ([]FestivalDay, error) {
	rows, err := r.db.Query(ctx,
		`SELECT d.id, d.date, s.id, s.name, s.color
			FROM festival_days d
			LEFT JOIN stages s ON s.festival_day_id = d.id
			WHERE d.festival_id = $1
			ORDER BY d.position, s.position`,
		festivalID,
	)
	if err != nil {
		log.Errorf("failed to query festival days: %v", err)
		return nil, err
	}
	defer rows.Close()

	var days []FestivalDay
	for rows.Next() {
		var dayID, date string
		var stageID, stageName, stageColor *string
		if err := rows.Scan(&dayID, &date, &stageID, &stageName, &stageColor); err != nil {
			log.Errorf("failed to scan festival day: %v", err)
			return nil, err
		}
		if len(days) == 0 || days[len(days)-1].ID != dayID {
			days = append(days, FestivalDay{ID: dayID, Date: date})
		}
		if stageID != nil {
			day := &days[len(days)-1]
			stage := Stage{ID: *stageID, Name: *stageName}
			if stageColor != nil {
				stage.Color = *stageColor
			}
			day.Stages = append(day.Stages, stage)
		}
	}
	if err := rows.Err(); err != nil {
		log.Errorf("error iterating over festival days: %v", err)
		return nil, err
	}
	return days, nil
}

func (r *FestivalRepoImpl) loadArtists(ctx context.Context, festivalID string) ([]ArtistSlot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, festival_day_id, stage_id, artist_name, start_time, end_time, priority
			FROM artist_slots WHERE festival_id = $1 ORDER BY start_time, id`,
		festivalID,
	)
	if err != nil {
		log.Errorf("failed to query artist slots: %v", err)
		return nil, err
	}
	defer rows.Close()

	var artists []ArtistSlot
	for rows.Next() {
		var slot ArtistSlot
		var priority string
		if err := rows.Scan(&slot.ID, &slot.DayID, &slot.StageID, &slot.ArtistName, &slot.StartTime, &slot.EndTime, &priority); err != nil {
			log.Errorf("failed to scan artist slot: %v", err)
			return nil, err
		}
		slot.Priority = Priority(priority)
		artists = append(artists, slot)
	}
	if err := rows.Err(); err != nil {
		log.Errorf("error iterating over artist slots: %v", err)
		return nil, err
	}
	return artists, nil
}

func (r *FestivalRepoImpl) Delete(ctx context.Context, festivalID string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM festivals WHERE id = $1`, festivalID)
	if err != nil {
		log.Errorf("failed to delete festival: %v", err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r *FestivalRepoImpl) UpdateArtistPriority(ctx context.Context, festivalID, artistID string, priority Priority, updatedAt time.Time) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Errorf("failed to begin transaction: %v", err)
		return false, err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE artist_slots SET priority = $1 WHERE id = $2 AND festival_id = $3`,
		string(priority), artistID, festivalID,
	)
	if err != nil {
		log.Errorf("failed to update artist priority: %v", err)
		return false, err
	}
	if result.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `UPDATE festivals SET updated_at = $1 WHERE id = $2`, updatedAt, festivalID)
	if err != nil {
		log.Errorf("failed to touch festival: %v", err)
		return false, err
	}

	return true, tx.Commit(ctx)
}

func (r *FestivalRepoImpl) UpdateContactInfo(ctx context.Context, festivalID string, info ContactInfo, updatedAt time.Time) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		log.Errorf("failed to begin transaction: %v", err)
		return false, err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `UPDATE festivals SET updated_at = $1 WHERE id = $2`, updatedAt, festivalID)
	if err != nil {
		log.Errorf("failed to touch festival: %v", err)
		return false, err
	}
	if result.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO contact_info (festival_id, name, phone, alternate_contact) VALUES ($1, $2, $3, $4)
			ON CONFLICT (festival_id) DO UPDATE SET name = $2, phone = $3, alternate_contact = $4`,
		festivalID, info.Name, info.Phone, info.AlternateContact,
	)
	if err != nil {
		log.Errorf("failed to upsert contact info: %v", err)
		return false, err
	}

	return true, tx.Commit(ctx)
}
