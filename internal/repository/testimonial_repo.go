package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
)

type TestimonialRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTestimonialRepository(db *pgxpool.Pool, logger *zap.Logger) *TestimonialRepository {
	return &TestimonialRepository{db: db, logger: logger}
}

// List returns testimonials ordered by submission time, newest first.
// A non-empty status restricts the result to that status.
func (r *TestimonialRepository) List(ctx context.Context, status string) ([]model.Testimonial, error) {
	r.logger.Debug("Listing testimonials", zap.String("status", status))

	query := `
        SELECT id, name, designation, company, text, photo_url, status, created_at
        FROM testimonials
    `
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query testimonials",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, err
	}
	defer rows.Close()

	testimonials := []model.Testimonial{}
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Designation,
			&t.Company,
			&t.Text,
			&t.PhotoURL,
			&t.Status,
			&t.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan testimonial row", zap.Error(err))
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to read testimonial rows", zap.Error(err))
		return nil, err
	}
	r.logger.Info("Testimonials listed successfully",
		zap.String("status", status),
		zap.Int("count", len(testimonials)),
	)
	return testimonials, nil
}

// GetByID returns a single testimonial. pgx.ErrNoRows when absent.
func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*model.Testimonial, error) {
	query := `
        SELECT id, name, designation, company, text, photo_url, status, created_at
        FROM testimonials
        WHERE id = $1
    `
	var t model.Testimonial
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Designation,
		&t.Company,
		&t.Text,
		&t.PhotoURL,
		&t.Status,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Insert persists a new testimonial. Status and CreatedAt come from the
// caller-prepared model (the service stamps them), never the client.
func (r *TestimonialRepository) Insert(ctx context.Context, t *model.Testimonial) (int64, error) {
	r.logger.Debug("Inserting testimonial",
		zap.String("name", t.Name),
		zap.String("status", t.Status),
	)
	query := `
        INSERT INTO testimonials (name, designation, company, text, photo_url, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		t.Name,
		t.Designation,
		t.Company,
		t.Text,
		t.PhotoURL,
		t.Status,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert testimonial",
			zap.Error(err),
			zap.String("name", t.Name),
		)
		return 0, err
	}
	r.logger.Info("Testimonial inserted successfully",
		zap.Int64("testimonial_id", t.ID),
		zap.String("status", t.Status),
	)
	return t.ID, nil
}

// Update overwrites only the fields present in upd. Status is not
// reachable from here; see SetStatus.
func (r *TestimonialRepository) Update(ctx context.Context, id int64, upd *model.TestimonialUpdate) error {
	r.logger.Debug("Updating testimonial", zap.Int64("testimonial_id", id))

	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Designation != nil {
		add("designation", *upd.Designation)
	}
	if upd.Company != nil {
		add("company", *upd.Company)
	}
	if upd.Text != nil {
		add("text", *upd.Text)
	}
	if upd.PhotoURL != nil {
		add("photo_url", *upd.PhotoURL)
	}

	if len(set) == 0 {
		r.logger.Debug("Update testimonial: nothing to change", zap.Int64("testimonial_id", id))
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE testimonials SET %s WHERE id = $%d", joinSet(set), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update testimonial",
			zap.Error(err),
			zap.Int64("testimonial_id", id),
		)
		return err
	}
	r.logger.Info("Testimonial updated",
		zap.Int64("testimonial_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// SetStatus sets the status unconditionally. Approving an already
// approved testimonial is a no-op, not an error.
func (r *TestimonialRepository) SetStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE testimonials SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		r.logger.Error("Failed to set testimonial status",
			zap.Error(err),
			zap.Int64("testimonial_id", id),
			zap.String("status", status),
		)
		return err
	}
	r.logger.Info("Testimonial status set",
		zap.Int64("testimonial_id", id),
		zap.String("status", status),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// Delete removes a testimonial. No error when the row never existed.
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete testimonial",
			zap.Error(err),
			zap.Int64("testimonial_id", id),
		)
		return err
	}
	r.logger.Info("Testimonial deleted",
		zap.Int64("testimonial_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// CountByStatus returns total and per-status counts in one query.
func (r *TestimonialRepository) CountByStatus(ctx context.Context) (total, pending, approved int, err error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'pending'),
            COUNT(*) FILTER (WHERE status = 'approved')
        FROM testimonials
    `
	err = r.db.QueryRow(ctx, query).Scan(&total, &pending, &approved)
	return total, pending, approved, err
}
