package postgres

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/structs"
	"gitlab.com/distributed_lab/kit/pgdb"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"github.com/tondeal/offer-flow-svc/internal/data"
)

const flowRecordsTable = "flow_records"

type journal struct {
	db *pgdb.DB
}

func NewFlowJournal(db *pgdb.DB) data.FlowJournal {
	return journal{db: db}
}

func (q journal) Insert(rec data.FlowRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	stmt := squirrel.Insert(flowRecordsTable).SetMap(structs.Map(rec))
	err := q.db.Exec(stmt)
	return errors.Wrap(err, "failed to insert flow record")
}

func (q journal) Unreported() ([]data.FlowRecord, error) {
	var result []data.FlowRecord
	stmt := squirrel.Select("*").From(flowRecordsTable).
		Where(squirrel.Eq{"stake_failed": true, "reported": false}).
		OrderBy("created_at")

	if err := q.db.Select(&result, stmt); err != nil {
		return nil, errors.Wrap(err, "failed to select flow records")
	}

	return result, nil
}

func (q journal) MarkReported(id int64) error {
	stmt := squirrel.Update(flowRecordsTable).
		Set("reported", true).
		Where(squirrel.Eq{"id": id})
	err := q.db.Exec(stmt)
	return errors.Wrap(err, "failed to update flow record")
}
