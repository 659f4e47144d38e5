package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/karrieremum/adminsvc/internal/admin/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, token_hash, email, name, created_by, expires_at, used, used_by, created_at, updated_at`

func scanInvite(row interface{ Scan(...any) error }) (domain.Invite, error) {
	var inv domain.Invite
	var name, usedBy sql.NullString
	err := row.Scan(&inv.ID, &inv.TokenHash, &inv.Email, &name, &inv.CreatedBy,
		&inv.ExpiresAt, &inv.Used, &usedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, err
	}
	inv.Name = mapNullString(name)
	inv.UsedBy = mapNullString(usedBy)
	return inv, nil
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, token_hash, email, name, created_by, expires_at, used, used_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.Email, mapStringNull(inv.Name), inv.CreatedBy,
		inv.ExpiresAt, inv.Used, mapStringNull(inv.UsedBy), inv.CreatedAt, inv.UpdatedAt)
	return mapConstraint(err)
}

func (r *invitesRepo) GetActiveInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE token_hash = ? AND used = 0 AND expires_at > ?`,
		hash, time.Now().UTC())
	inv, err := scanInvite(row)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) ListInvitesByEmail(ctx context.Context, email string) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE email = ? ORDER BY created_at DESC, id DESC`,
		email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []domain.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *invitesRepo) MarkInviteUsed(ctx context.Context, inviteID string, usedByUserID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET used = 1, used_by = ?, updated_at = ? WHERE id = ?`,
		usedByUserID, time.Now().UTC(), inviteID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invites WHERE expires_at <= ?`,
		time.Now().UTC())
	return err
}
