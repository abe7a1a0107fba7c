package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaan/etdtrack/internal/app/models"
	"github.com/kaan/etdtrack/internal/pkg/apperrors"
	"github.com/kaan/etdtrack/internal/pkg/helpers"
)

// CommitteeRepository handles database operations for dissertation
// committee members
type CommitteeRepository struct {
	db *pgxpool.Pool
}

// NewCommitteeRepository creates a new committee repository
func NewCommitteeRepository(db *pgxpool.Pool) *CommitteeRepository {
	return &CommitteeRepository{
		db: db,
	}
}

// CreateTx inserts a committee member row inside a caller-owned
// transaction. The member's person record must already exist.
func (r *CommitteeRepository) CreateTx(ctx context.Context, q DB, member *models.CommitteeMember) error {
	err := q.QueryRow(ctx, `
		INSERT INTO committee_members (candidate_id, person_id, role, department_id, affiliation)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		member.CandidateID,
		member.PersonID,
		string(member.Role),
		member.DepartmentID,
		helpers.GetContentNullString(member.Affiliation),
	).Scan(&member.ID)
	if err != nil {
		return fmt.Errorf("error creating committee member: %w", err)
	}
	return nil
}

// ListByCandidate returns a candidate's committee members together with
// their person records, directors before readers.
func (r *CommitteeRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]*models.CommitteeMember, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.candidate_id, m.person_id, m.role, m.department_id, COALESCE(m.affiliation, ''),
			p.id, p.netid, p.orcid, p.bannerid, p.first_name, p.last_name, p.middle, p.email,
			p.address_street, p.address_city, p.address_state, p.address_zip, p.phone
		FROM committee_members m
		JOIN people p ON p.id = m.person_id
		WHERE m.candidate_id = $1
		ORDER BY m.role = 'director' DESC, p.last_name, p.first_name`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error listing committee members: %w", err)
	}
	defer rows.Close()

	var members []*models.CommitteeMember
	for rows.Next() {
		var m models.CommitteeMember
		var p models.Person
		var role string
		err := rows.Scan(
			&m.ID,
			&m.CandidateID,
			&m.PersonID,
			&role,
			&m.DepartmentID,
			&m.Affiliation,
			&p.ID,
			&p.NetID,
			&p.ORCID,
			&p.BannerID,
			&p.FirstName,
			&p.LastName,
			&p.Middle,
			&p.Email,
			&p.AddressStreet,
			&p.AddressCity,
			&p.AddressState,
			&p.AddressZip,
			&p.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning committee member: %w", err)
		}
		m.Role = models.CommitteeRole(role)
		m.Person = &p
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating committee members: %w", err)
	}
	return members, nil
}

// Delete removes a committee member from a candidate's committee.
func (r *CommitteeRepository) Delete(ctx context.Context, candidateID, memberID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM committee_members WHERE id = $1 AND candidate_id = $2`,
		memberID, candidateID)
	if err != nil {
		return fmt.Errorf("error deleting committee member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommitteeMemberNotFound
	}
	return nil
}
