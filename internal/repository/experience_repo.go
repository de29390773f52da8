package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
)

type ExperienceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExperienceRepository(db *pgxpool.Pool, logger *zap.Logger) *ExperienceRepository {
	return &ExperienceRepository{db: db, logger: logger}
}

// List returns all experiences ordered by start date, newest first.
func (r *ExperienceRepository) List(ctx context.Context) ([]model.Experience, error) {
	r.logger.Debug("Listing experiences")
	query := `
        SELECT id, title, company_name, start_date, COALESCE(end_date, ''), icon_bg, icon, points
        FROM experiences
        ORDER BY start_date DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query experiences", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	experiences := []model.Experience{}
	for rows.Next() {
		var (
			e      model.Experience
			points []byte
		)
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.CompanyName,
			&e.StartDate,
			&e.EndDate,
			&e.IconBg,
			&e.Icon,
			&points,
		); err != nil {
			r.logger.Error("Failed to scan experience row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(points, &e.Points); err != nil {
			r.logger.Error("Failed to decode experience points",
				zap.Int64("experience_id", e.ID),
				zap.Error(err),
			)
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to read experience rows", zap.Error(err))
		return nil, err
	}
	r.logger.Info("Experiences listed successfully", zap.Int("count", len(experiences)))
	return experiences, nil
}

// GetByID returns a single experience. pgx.ErrNoRows when absent.
func (r *ExperienceRepository) GetByID(ctx context.Context, id int64) (*model.Experience, error) {
	query := `
        SELECT id, title, company_name, start_date, COALESCE(end_date, ''), icon_bg, icon, points
        FROM experiences
        WHERE id = $1
    `
	var (
		e      model.Experience
		points []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Title,
		&e.CompanyName,
		&e.StartDate,
		&e.EndDate,
		&e.IconBg,
		&e.Icon,
		&points,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(points, &e.Points); err != nil {
		return nil, err
	}
	return &e, nil
}

// Insert persists a new experience and returns its ID.
func (r *ExperienceRepository) Insert(ctx context.Context, e *model.Experience) (int64, error) {
	r.logger.Debug("Inserting experience",
		zap.String("title", e.Title),
		zap.String("company_name", e.CompanyName),
	)
	points, err := json.Marshal(e.Points)
	if err != nil {
		return 0, err
	}

	query := `
        INSERT INTO experiences (title, company_name, start_date, end_date, icon_bg, icon, points)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
        RETURNING id
    `
	var id int64
	err = r.db.QueryRow(ctx, query,
		e.Title,
		e.CompanyName,
		e.StartDate,
		e.EndDate,
		e.IconBg,
		e.Icon,
		points,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert experience",
			zap.Error(err),
			zap.String("title", e.Title),
		)
		return 0, err
	}
	r.logger.Info("Experience inserted successfully", zap.Int64("experience_id", id))
	return id, nil
}

// Update overwrites only the fields present in upd; absent fields stay
// untouched, a supplied points array replaces the stored one wholesale.
func (r *ExperienceRepository) Update(ctx context.Context, id int64, upd *model.ExperienceUpdate) error {
	r.logger.Debug("Updating experience", zap.Int64("experience_id", id))

	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.CompanyName != nil {
		add("company_name", *upd.CompanyName)
	}
	if upd.StartDate != nil {
		add("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		args = append(args, *upd.EndDate)
		set = append(set, fmt.Sprintf("end_date = NULLIF($%d, '')", len(args)))
	}
	if upd.IconBg != nil {
		add("icon_bg", *upd.IconBg)
	}
	if upd.Icon != nil {
		add("icon", *upd.Icon)
	}
	if upd.Points != nil {
		points, err := json.Marshal(*upd.Points)
		if err != nil {
			return err
		}
		add("points", points)
	}

	if len(set) == 0 {
		r.logger.Debug("Update experience: nothing to change", zap.Int64("experience_id", id))
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE experiences SET %s WHERE id = $%d", joinSet(set), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update experience",
			zap.Error(err),
			zap.Int64("experience_id", id),
		)
		return err
	}
	r.logger.Info("Experience updated",
		zap.Int64("experience_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// Delete removes an experience. No error when the row never existed.
func (r *ExperienceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete experience",
			zap.Error(err),
			zap.Int64("experience_id", id),
		)
		return err
	}
	r.logger.Info("Experience deleted",
		zap.Int64("experience_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// Count returns the number of experiences.
func (r *ExperienceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&count)
	return count, err
}
