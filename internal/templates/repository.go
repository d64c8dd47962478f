package templates

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lmercier/bulletin/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a template repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "templates"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

type storedRow struct {
	id   string
	data []byte
}

func scanStored(s repository.Scanner) (storedRow, error) {
	var row storedRow
	err := s.Scan(&row.id, &row.data)
	return row, err
}

func (r *repo) List(ctx context.Context) ([]MappingTemplate, error) {
	rows, err := repository.QueryMany(
		ctx, r.db,
		"SELECT id, data FROM mapping_templates",
		nil, scanStored,
	)
	if err != nil {
		// Availability of the mapping feature wins over strict reporting:
		// a corrupt store reads as an empty collection.
		r.logger.Error("template store unreadable, degrading to empty collection", "error", err)
		return []MappingTemplate{}, nil
	}

	templates := make([]MappingTemplate, 0, len(rows))
	for _, row := range rows {
		var tpl MappingTemplate
		if err := json.Unmarshal(row.data, &tpl); err != nil {
			r.logger.Warn("skipping unparsable template entry", "id", row.id, "error", err)
			continue
		}
		templates = append(templates, tpl)
	}

	return templates, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*MappingTemplate, error) {
	row, err := repository.QueryOne(
		ctx, r.db,
		"SELECT id, data FROM mapping_templates WHERE id = ?",
		[]any{id.String()}, scanStored,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	var tpl MappingTemplate
	if err := json.Unmarshal(row.data, &tpl); err != nil {
		return nil, fmt.Errorf("unmarshal template %s: %w", id, err)
	}

	return &tpl, nil
}

func (r *repo) Save(ctx context.Context, tpl MappingTemplate) (*MappingTemplate, error) {
	if err := tpl.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	saved, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (MappingTemplate, error) {
		if tpl.ID == uuid.Nil {
			tpl.ID = uuid.New()
			tpl.DateCreated = now
		} else {
			existing, err := findInTx(ctx, tx, tpl.ID)
			switch {
			case err == nil:
				tpl.DateCreated = existing.DateCreated
			case errors.Is(err, ErrNotFound):
				tpl.DateCreated = now
			default:
				return tpl, err
			}
		}

		tpl.LastUsed = now

		data, err := json.Marshal(tpl)
		if err != nil {
			return tpl, fmt.Errorf("marshal template: %w", err)
		}

		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO mapping_templates (id, data) VALUES (?, ?)
			 ON CONFLICT (id) DO UPDATE SET data = excluded.data`,
			tpl.ID.String(), data,
		)
		return tpl, err
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("template saved", "id", saved.ID, "name", saved.Name)
	return &saved, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		"DELETE FROM mapping_templates WHERE id = ?",
		id.String(),
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if affected > 0 {
		r.logger.Info("template deleted", "id", id)
	}

	return affected > 0, nil
}

func (r *repo) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		tpl, err := findInTx(ctx, tx, id)
		if errors.Is(err, ErrNotFound) {
			return struct{}{}, nil
		}
		if err != nil {
			return struct{}{}, err
		}

		tpl.LastUsed = time.Now().UTC()

		data, err := json.Marshal(tpl)
		if err != nil {
			return struct{}{}, fmt.Errorf("marshal template: %w", err)
		}

		_, err = tx.ExecContext(
			ctx,
			"UPDATE mapping_templates SET data = ? WHERE id = ?",
			data, id.String(),
		)
		return struct{}{}, err
	})

	return err
}

func findInTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*MappingTemplate, error) {
	row, err := repository.QueryOne(
		ctx, tx,
		"SELECT id, data FROM mapping_templates WHERE id = ?",
		[]any{id.String()}, scanStored,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	var tpl MappingTemplate
	if err := json.Unmarshal(row.data, &tpl); err != nil {
		return nil, fmt.Errorf("unmarshal template %s: %w", id, err)
	}

	return &tpl, nil
}
