package index

import (
	"github.com/lintang-b-s/geodabs/pkg/geo"
)

// Record binds an opaque identifier to the trajectory it exclusively
// owns. Identity is the identifier alone: two records with the same id
// are the same record.
type Record struct {
	ID         string
	Trajectory geo.Trajectory
}

func NewRecord(id string, trajectory geo.Trajectory) *Record {
	return &Record{
		ID:         id,
		Trajectory: trajectory,
	}
}

// Query asks for every corpus record whose Jaccard distance to the
// query record is at most Distance. The numeric id names the response
// artifact and never participates in matching.
type Query struct {
	ID       int
	Record   *Record
	Distance float64
}

func NewQuery(id int, record *Record, distance float64) Query {
	return Query{
		ID:       id,
		Record:   record,
		Distance: distance,
	}
}

type Result struct {
	Record   *Record
	Distance float64
}

// Response carries the results of one query, sorted by ascending
// distance. Ties are broken by record id so a sealed index always
// produces the same response.
type Response struct {
	Query   Query
	Results []Result
}

// TrajectoryIndex is the ingest/retrieval contract shared by the
// geohash and geodab indices. Add must complete before the first Query;
// a sealed index is safe for any number of concurrent readers.
type TrajectoryIndex interface {
	Add(records []*Record)
	Query(q Query) Response
}
