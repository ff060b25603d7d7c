package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/webinfo-api/infrastructure/database/postgres"
	"github.com/vfg2006/webinfo-api/internal/domain"
)

const trafficSnapshotsTable = "traffic_snapshots"

type TrafficSnapshotRepository interface {
	SaveOrUpdateSnapshot(snapshot *domain.TrafficSnapshot) error
	GetByDomainAndPeriod(domainName string, start, end time.Time) ([]*domain.TrafficSnapshot, error)
}

type trafficSnapshotRepository struct {
	conn *postgres.Connection
}

func NewTrafficSnapshotRepository(conn *postgres.Connection) TrafficSnapshotRepository {
	return &trafficSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdateSnapshot insere o snapshot do dia, atualizando as métricas se
// o par (domínio, data) já existir
func (r *trafficSnapshotRepository) SaveOrUpdateSnapshot(snapshot *domain.TrafficSnapshot) error {
	queryBuilder := squirrel.
		Insert(trafficSnapshotsTable).
		Columns("domain", "date", "page_views_per_million", "page_views_per_user", "rank", "reach_per_million", "synced_at").
		Values(
			snapshot.Domain,
			snapshot.Date,
			snapshot.PageViewsPerMillion,
			snapshot.PageViewsPerUser,
			snapshot.Rank,
			snapshot.ReachPerMillion,
			snapshot.SyncedAt,
		).
		Suffix(`ON CONFLICT (domain, date) DO UPDATE SET
			page_views_per_million = EXCLUDED.page_views_per_million,
			page_views_per_user = EXCLUDED.page_views_per_user,
			rank = EXCLUDED.rank,
			reach_per_million = EXCLUDED.reach_per_million,
			synced_at = EXCLUDED.synced_at`).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "building snapshot upsert")
	}

	_, err = r.conn.Exec(snapshotSQL, snapshotArgs...)
	if err != nil {
		return errors.Wrap(err, "upserting traffic snapshot")
	}

	return nil
}

// GetByDomainAndPeriod retorna os snapshots do domínio entre start e end
// (inclusivo), ordenados por data ascendente
func (r *trafficSnapshotRepository) GetByDomainAndPeriod(domainName string, start, end time.Time) ([]*domain.TrafficSnapshot, error) {
	queryBuilder := squirrel.
		Select("id", "domain", "date", "page_views_per_million", "page_views_per_user", "rank", "reach_per_million", "synced_at").
		From(trafficSnapshotsTable).
		Where(squirrel.Eq{"domain": domainName}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building snapshot query")
	}

	rows, err := r.conn.Query(snapshotSQL, snapshotArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "querying traffic snapshots")
	}
	defer rows.Close()

	var snapshots []*domain.TrafficSnapshot
	for rows.Next() {
		var snapshot domain.TrafficSnapshot
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.Domain,
			&snapshot.Date,
			&snapshot.PageViewsPerMillion,
			&snapshot.PageViewsPerUser,
			&snapshot.Rank,
			&snapshot.ReachPerMillion,
			&snapshot.SyncedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scanning traffic snapshot")
		}

		snapshots = append(snapshots, &snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
