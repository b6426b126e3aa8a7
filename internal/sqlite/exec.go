package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/scrapledger/pkg/types"
)

// QueryError reports a failed statement together with the statement text and
// its parameters, so callers can log enough to reproduce the failure.
// It matches types.ErrQueryFailed under errors.Is.
type QueryError struct {
	Stmt string
	Args []any
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v (stmt: %s, args: %v)", e.Err, e.Stmt, e.Args)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == types.ErrQueryFailed }

// Row is one result row: column values in the order the driver reported
// them. Joined reads keep the concatenated column order of the statement.
type Row struct {
	cols []string
	vals []any
}

// Columns returns the column names in result order.
func (r Row) Columns() []string { return r.cols }

// Value returns the value of the first column with the given name, or nil
// when the column is not present.
func (r Row) Value(name string) any {
	for i, c := range r.cols {
		if c == name {
			return r.vals[i]
		}
	}
	return nil
}

// Record converts the row to a generic record. When a statement yields
// duplicate column names the later one wins, which is why pairing queries
// alias every colliding column explicitly.
func (r Row) Record() types.Record {
	rec := make(types.Record, len(r.cols))
	for i, c := range r.cols {
		rec[c] = r.vals[i]
	}
	return rec
}

// Query runs a read statement and returns the normalized rows. An empty
// result is a valid outcome, not an error.
func (s *Store) Query(stmt string, args ...any) ([]Row, error) {
	db, err := s.Handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(stmt, args...)
	if err != nil {
		return nil, &QueryError{Stmt: stmt, Args: args, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{Stmt: stmt, Args: args, Err: err}
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{Stmt: stmt, Args: args, Err: err}
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		out = append(out, Row{cols: cols, vals: vals})
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Stmt: stmt, Args: args, Err: err}
	}
	return out, nil
}

// Insert runs an insertion and returns the assigned identity. Zero is a
// legitimate identity; failure is signalled only through the error value,
// never through the returned number.
func (s *Store) Insert(stmt string, args ...any) (int64, error) {
	db, err := s.Handle()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(stmt, args...)
	if err != nil {
		return 0, &QueryError{Stmt: stmt, Args: args, Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &QueryError{Stmt: stmt, Args: args, Err: err}
	}
	return id, nil
}

// Exec runs an update or delete and returns the affected row count. Zero
// affected rows means "no matching row" and is not an error here; callers
// that require a match translate it themselves.
func (s *Store) Exec(stmt string, args ...any) (int64, error) {
	db, err := s.Handle()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(stmt, args...)
	if err != nil {
		return 0, &QueryError{Stmt: stmt, Args: args, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &QueryError{Stmt: stmt, Args: args, Err: err}
	}
	return n, nil
}
