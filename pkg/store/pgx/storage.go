// Package pgx implements store.RiskStorage on Postgres. Graph nodes and
// edges map onto relational tables with uniqueness constraints on event and
// supplier ids; AFFECTS and SUPPLIES edges are join tables with merge
// semantics.
package pgx

import (
	"github.com/chainsight/riskgraph/backend/pkg/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RiskDBStorage is the Postgres-backed implementation of store.RiskStorage.
type RiskDBStorage struct {
	conn *pgxpool.Pool
}

var _ store.RiskStorage = (*RiskDBStorage)(nil)

// NewRiskDBStorage creates a storage layer over an existing connection pool.
// The pool is owned by the caller; each logical operation acquires its own
// connection or transaction scope from it and releases it on every exit path.
func NewRiskDBStorage(conn *pgxpool.Pool) *RiskDBStorage {
	return &RiskDBStorage{conn: conn}
}
