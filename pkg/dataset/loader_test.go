package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRecord(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "000001.txt", "lon,lat\n-117.0,38.0\n-117.01,38.01\n")

	record, err := ReadRecord(path)
	require.NoError(t, err)
	require.Len(t, record.Trajectory, 2)
	assert.Equal(t, geo.NewPoint(-117.0, 38.0), record.Trajectory[0])
	assert.Equal(t, geo.NewPoint(-117.01, 38.01), record.Trajectory[1])
}

func TestReadRecordMalformed(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "bad.txt", "lon,lat\nnot-a-number,38.0\n")
	_, err := ReadRecord(path)
	assert.Error(t, err)

	empty := writeFile(t, dir, "empty.txt", "lon,lat\n")
	_, err = ReadRecord(empty)
	assert.Error(t, err)

	_, err = ReadRecord(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestReadDatasetKeepsManifestOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "lon,lat\n1.0,2.0\n")
	writeFile(t, dir, "b.txt", "lon,lat\n3.0,4.0\n")
	writeFile(t, dir, "c.txt", "lon,lat\n5.0,6.0\n")
	manifest := writeFile(t, dir, "dataset.txt", "a.txt\nb.txt\nc.txt\n")

	records, err := ReadDataset(manifest)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a.txt", records[0].ID)
	assert.Equal(t, "b.txt", records[1].ID)
	assert.Equal(t, "c.txt", records[2].ID)
	assert.Equal(t, geo.NewPoint(3.0, 4.0), records[1].Trajectory[0])
}

func TestReadQueries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "q.txt", "lon,lat\n-117.0,38.0\n")
	manifest := writeFile(t, dir, "queries.txt", "q.txt 0.25\nq.txt 0.5\n")

	queries, err := ReadQueries(manifest)
	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, 0, queries[0].ID)
	assert.Equal(t, 1, queries[1].ID)
	assert.Equal(t, 0.25, queries[0].Distance)
	assert.Equal(t, "q.txt", queries[0].Record.ID)
}

func TestWriteResponse(t *testing.T) {
	dir := t.TempDir()
	record := index.NewRecord("files/000042.txt", geo.Trajectory{geo.NewPoint(0, 0)})
	response := index.Response{
		Query: index.NewQuery(7, record, 0.5),
		Results: []index.Result{
			{Record: record, Distance: 0},
			{Record: index.NewRecord("files/000043.txt", geo.Trajectory{geo.NewPoint(0, 0)}), Distance: 0.2},
		},
	}

	require.NoError(t, WriteResponse(dir, response))

	content, err := os.ReadFile(filepath.Join(dir, "response-00007.txt"))
	require.NoError(t, err)
	assert.Equal(t, "files/000042.txt\nfiles/000043.txt\n", string(content))
}
