package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/webinfo-api/infrastructure/database/postgres"
	"github.com/vfg2006/webinfo-api/internal/domain"
)

const trackedDomainsTable = "tracked_domains"

type TrackedDomainRepository interface {
	Create(trackedDomain *domain.TrackedDomain) (*domain.TrackedDomain, error)
	GetByName(name string) (*domain.TrackedDomain, error)
	ListActive() ([]*domain.TrackedDomain, error)
	SetActive(id int, active bool) error
}

type trackedDomainRepository struct {
	conn *postgres.Connection
}

func NewTrackedDomainRepository(conn *postgres.Connection) TrackedDomainRepository {
	return &trackedDomainRepository{
		conn: conn,
	}
}

func (r *trackedDomainRepository) Create(trackedDomain *domain.TrackedDomain) (*domain.TrackedDomain, error) {
	queryBuilder := squirrel.
		Insert(trackedDomainsTable).
		Columns("name", "active").
		Values(trackedDomain.Name, trackedDomain.Active).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	domainSQL, domainArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building tracked domain insert")
	}

	err = r.conn.QueryRow(domainSQL, domainArgs...).Scan(
		&trackedDomain.ID,
		&trackedDomain.CreatedAt,
		&trackedDomain.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "inserting tracked domain")
	}

	return trackedDomain, nil
}

func (r *trackedDomainRepository) GetByName(name string) (*domain.TrackedDomain, error) {
	var trackedDomain domain.TrackedDomain

	err := r.conn.QueryRow(
		"SELECT id, name, active, created_at, updated_at FROM tracked_domains WHERE name = $1",
		name,
	).Scan(
		&trackedDomain.ID,
		&trackedDomain.Name,
		&trackedDomain.Active,
		&trackedDomain.CreatedAt,
		&trackedDomain.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &trackedDomain, nil
}

func (r *trackedDomainRepository) ListActive() ([]*domain.TrackedDomain, error) {
	queryBuilder := squirrel.
		Select("id", "name", "active", "created_at", "updated_at").
		From(trackedDomainsTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	domainsSQL, domainsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building tracked domains query")
	}

	rows, err := r.conn.Query(domainsSQL, domainsArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "querying tracked domains")
	}
	defer rows.Close()

	var trackedDomains []*domain.TrackedDomain
	for rows.Next() {
		var trackedDomain domain.TrackedDomain
		if err := rows.Scan(
			&trackedDomain.ID,
			&trackedDomain.Name,
			&trackedDomain.Active,
			&trackedDomain.CreatedAt,
			&trackedDomain.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scanning tracked domain")
		}

		trackedDomains = append(trackedDomains, &trackedDomain)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trackedDomains, nil
}

func (r *trackedDomainRepository) SetActive(id int, active bool) error {
	queryBuilder := squirrel.
		Update(trackedDomainsTable).
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	domainSQL, domainArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "building tracked domain update")
	}

	_, err = r.conn.Exec(domainSQL, domainArgs...)
	if err != nil {
		return errors.Wrap(err, "updating tracked domain")
	}

	return nil
}
