package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
)

type ProjectRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{db: db, logger: logger}
}

// List returns all projects, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	r.logger.Debug("Listing projects")
	query := `
        SELECT id, name, description, image_url, live_url, source_url, tags, created_at
        FROM projects
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var (
			p    model.Project
			tags []byte
		)
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.ImageURL,
			&p.LiveURL,
			&p.SourceURL,
			&tags,
			&p.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan project row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			r.logger.Error("Failed to decode project tags",
				zap.Int64("project_id", p.ID),
				zap.Error(err),
			)
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to read project rows", zap.Error(err))
		return nil, err
	}
	r.logger.Info("Projects listed successfully", zap.Int("count", len(projects)))
	return projects, nil
}

// GetByID returns a single project. pgx.ErrNoRows when absent.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	query := `
        SELECT id, name, description, image_url, live_url, source_url, tags, created_at
        FROM projects
        WHERE id = $1
    `
	var (
		p    model.Project
		tags []byte
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.ImageURL,
		&p.LiveURL,
		&p.SourceURL,
		&tags,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert persists a new project. CreatedAt is stamped by the database,
// never taken from the caller.
func (r *ProjectRepository) Insert(ctx context.Context, p *model.Project) (int64, error) {
	r.logger.Debug("Inserting project", zap.String("name", p.Name))
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return 0, err
	}

	query := `
        INSERT INTO projects (name, description, image_url, live_url, source_url, tags)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err = r.db.QueryRow(ctx, query,
		p.Name,
		p.Description,
		p.ImageURL,
		p.LiveURL,
		p.SourceURL,
		tags,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert project",
			zap.Error(err),
			zap.String("name", p.Name),
		)
		return 0, err
	}
	r.logger.Info("Project inserted successfully", zap.Int64("project_id", p.ID))
	return p.ID, nil
}

// Update overwrites only the fields present in upd. created_at is not
// updatable.
func (r *ProjectRepository) Update(ctx context.Context, id int64, upd *model.ProjectUpdate) error {
	r.logger.Debug("Updating project", zap.Int64("project_id", id))

	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.ImageURL != nil {
		add("image_url", *upd.ImageURL)
	}
	if upd.LiveURL != nil {
		add("live_url", *upd.LiveURL)
	}
	if upd.SourceURL != nil {
		add("source_url", *upd.SourceURL)
	}
	if upd.Tags != nil {
		tags, err := json.Marshal(*upd.Tags)
		if err != nil {
			return err
		}
		add("tags", tags)
	}

	if len(set) == 0 {
		r.logger.Debug("Update project: nothing to change", zap.Int64("project_id", id))
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", joinSet(set), len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update project",
			zap.Error(err),
			zap.Int64("project_id", id),
		)
		return err
	}
	r.logger.Info("Project updated",
		zap.Int64("project_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// Delete removes a project. No error when the row never existed.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete project",
			zap.Error(err),
			zap.Int64("project_id", id),
		)
		return err
	}
	r.logger.Info("Project deleted",
		zap.Int64("project_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}

// Count returns the number of projects.
func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}
