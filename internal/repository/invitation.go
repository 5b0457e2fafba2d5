package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const invitationColumns = `id, display_name, confirmed, assigned_passes, confirmed_pass_count,
		adults, children, created_at, updated_at`

type InvitationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInvitationRepo(db *dbpg.DB) *InvitationRepository {
	return &InvitationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	// Guest columns are NOT NULL; nil slices must reach the driver as
	// empty values, not SQL NULL.
	adults := inv.Adults
	if adults == nil {
		adults = []string{}
	}
	children := inv.Children
	if children == nil {
		children = []domain.ChildGuest{}
	}
	childrenJSON, err := json.Marshal(children)
	if err != nil {
		return fmt.Errorf("marshal children: %w", err)
	}

	query := `INSERT INTO invitations (id, display_name, confirmed, assigned_passes, confirmed_pass_count,
				adults, children, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		inv.ID, inv.DisplayName, inv.Confirmed, inv.AssignedPasses, inv.ConfirmedPassCount,
		pq.Array(adults), childrenJSON, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrInvitationExists
		}
		return fmt.Errorf("insert invitation: %w", err)
	}

	return nil
}

// Resolve looks an external code up directly, then through the alias table
// for codes retired by a merge. The returned record always carries the
// effective (post-alias) id; callers must use it for any later write.
func (r *InvitationRepository) Resolve(ctx context.Context, externalID string) (*domain.Invitation, error) {
	inv, err := r.getByID(ctx, externalID)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, domain.ErrInvitationNotFound) {
		return nil, err
	}

	newID, err := r.aliasTarget(ctx, externalID)
	if err != nil {
		if errors.Is(err, domain.ErrAliasNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}

	return r.getByID(ctx, newID)
}

func (r *InvitationRepository) getByID(ctx context.Context, id string) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + `
			  FROM invitations
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	return scanInvitation(row.Scan)
}

func (r *InvitationRepository) aliasTarget(ctx context.Context, oldID string) (string, error) {
	query := `SELECT new_id FROM invitation_aliases WHERE old_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, oldID)
	if err != nil {
		return "", fmt.Errorf("get alias: %w", err)
	}

	var newID string
	if err = row.Scan(&newID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrAliasNotFound
		}
		return "", fmt.Errorf("scan alias: %w", err)
	}

	return newID, nil
}

// SubmitResponse records an RSVP in a single update keyed by the effective
// id. Prior answers are replaced wholesale; re-submitting is last-write-wins.
func (r *InvitationRepository) SubmitResponse(ctx context.Context, id string, adults []string, children []domain.ChildGuest, declined bool) error {
	passCount := len(adults) + len(children)
	if declined {
		passCount = 0
		adults = nil
		children = nil
	}

	// Same NOT NULL coalescing as Create: a decline wipes the guest lists
	// to empty values, never to SQL NULL.
	if adults == nil {
		adults = []string{}
	}
	if children == nil {
		children = []domain.ChildGuest{}
	}
	childrenJSON, err := json.Marshal(children)
	if err != nil {
		return fmt.Errorf("marshal children: %w", err)
	}

	query := `UPDATE invitations
			  SET confirmed = TRUE,
			      confirmed_pass_count = $2,
			      adults = $3,
			      children = $4,
			      updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, passCount, pq.Array(adults), childrenJSON)
	if err != nil {
		return fmt.Errorf("update response: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("response rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvitationNotFound
	}

	return nil
}

func (r *InvitationRepository) List(ctx context.Context) ([]*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + `
			  FROM invitations
			  ORDER BY display_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, inv)
	}

	return res, rows.Err()
}

// Merge fuses two invitations: the survivor absorbs the retired record's
// assigned passes, the retired row is deleted and an alias keeps its old
// links working. Aliases that pointed at the retired record are re-pointed
// so every chain stays one hop long.
func (r *InvitationRepository) Merge(ctx context.Context, oldID, newID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var oldPasses int
	var oldConfirmed bool
	query := `SELECT assigned_passes, confirmed FROM invitations WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, oldID).Scan(&oldPasses, &oldConfirmed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrInvitationNotFound
		}
		return fmt.Errorf("get retired invitation: %w", err)
	}
	if oldConfirmed {
		return fmt.Errorf("%w: %s already responded", domain.ErrMergeConflict, oldID)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE invitations SET assigned_passes = assigned_passes + $2, updated_at = now() WHERE id = $1`,
		newID, oldPasses,
	)
	if err != nil {
		return fmt.Errorf("grow surviving invitation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("merge rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvitationNotFound
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE invitation_aliases SET new_id = $2 WHERE new_id = $1`,
		oldID, newID,
	); err != nil {
		return fmt.Errorf("repoint aliases: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, oldID); err != nil {
		return fmt.Errorf("delete retired invitation: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO invitation_aliases (old_id, new_id) VALUES ($1, $2)`,
		oldID, newID,
	); err != nil {
		return fmt.Errorf("insert alias: %w", err)
	}

	return tx.Commit()
}

func (r *InvitationRepository) Summary(ctx context.Context) (*domain.Summary, error) {
	query := `SELECT COUNT(*),
				COUNT(*) FILTER (WHERE confirmed AND confirmed_pass_count > 0),
				COUNT(*) FILTER (WHERE confirmed AND confirmed_pass_count = 0),
				COUNT(*) FILTER (WHERE NOT confirmed),
				COALESCE(SUM(assigned_passes), 0),
				COALESCE(SUM(confirmed_pass_count), 0)
			  FROM invitations`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	var s domain.Summary
	if err = row.Scan(
		&s.Invitations, &s.Confirmed, &s.Declined, &s.Pending,
		&s.PassesAssigned, &s.PassesConfirmed,
	); err != nil {
		return nil, fmt.Errorf("scan summary: %w", err)
	}

	return &s, nil
}

func scanInvitation(scan func(...any) error) (*domain.Invitation, error) {
	var inv domain.Invitation
	var adults pq.StringArray
	var childrenJSON []byte

	err := scan(
		&inv.ID, &inv.DisplayName, &inv.Confirmed, &inv.AssignedPasses, &inv.ConfirmedPassCount,
		&adults, &childrenJSON, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("scan invitation: %w", err)
	}

	inv.Adults = adults
	if len(childrenJSON) > 0 {
		if err = json.Unmarshal(childrenJSON, &inv.Children); err != nil {
			return nil, fmt.Errorf("unmarshal children: %w", err)
		}
	}

	return &inv, nil
}
