package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dsnet/compress/bzip2"

	"github.com/lintang-b-s/geodabs/pkg/concurrent"
	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

// ReadRecord reads one trajectory file: a header line followed by
// "lon,lat" rows. Files ending in .bz2 are decompressed transparently.
func ReadRecord(path string) (*index.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "open record %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		br, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "bzip2 record %s", path)
		}
		defer br.Close()
		r = br
	}

	points, err := readPoints(r)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "parse record %s", path)
	}
	return index.NewRecord(path, points), nil
}

func readPoints(r io.Reader) (geo.Trajectory, error) {
	scanner := bufio.NewScanner(r)
	points := make(geo.Trajectory, 0)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			// header line
			first = false
			continue
		}
		if line == "" {
			continue
		}
		part := strings.SplitN(line, ",", 2)
		if len(part) != 2 {
			return nil, fmt.Errorf("malformed point row %q", line)
		}
		lon, err := util.StringToFloat64(strings.TrimSpace(part[0]))
		if err != nil {
			return nil, err
		}
		lat, err := util.StringToFloat64(strings.TrimSpace(part[1]))
		if err != nil {
			return nil, err
		}
		points = append(points, geo.NewPoint(lon, lat))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty trajectory")
	}
	return points, nil
}

type recordResult struct {
	record *index.Record
	err    error
}

// ReadDataset reads the record files listed in a manifest, one path per
// line relative to the manifest's directory. File reads are spread over
// a worker pool; the caller gets the records in manifest order.
func ReadDataset(manifestPath string) ([]*index.Record, error) {
	names, err := readLines(manifestPath)
	if err != nil {
		return nil, err
	}
	directory := filepath.Dir(manifestPath)

	pool := concurrent.NewWorkerPool[int, recordResult](util.MinInt(runtime.NumCPU(), len(names)), len(names))
	pool.Start(func(i int) recordResult {
		record, err := ReadRecord(filepath.Join(directory, names[i]))
		if err != nil {
			return recordResult{err: err}
		}
		record.ID = names[i]
		return recordResult{record: record}
	})
	for i := range names {
		pool.AddJob(i)
	}
	pool.Close()
	pool.Wait()

	byID := make(map[string]*index.Record, len(names))
	for _, res := range pool.CollectAll() {
		if res.err != nil {
			return nil, res.err
		}
		byID[res.record.ID] = res.record
	}
	records := make([]*index.Record, len(names))
	for i, name := range names {
		records[i] = byID[name]
	}
	return records, nil
}

// ReadQueries reads a query manifest: one query per line,
// "<identifier> <threshold>" separated by whitespace. The query id is
// the line ordinal; it names the response artifact.
func ReadQueries(manifestPath string) ([]index.Query, error) {
	lines, err := readLines(manifestPath)
	if err != nil {
		return nil, err
	}
	directory := filepath.Dir(manifestPath)

	queries := make([]index.Query, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed query line %d: %q", i, line)
		}
		record, err := ReadRecord(filepath.Join(directory, fields[0]))
		if err != nil {
			return nil, err
		}
		record.ID = fields[0]
		threshold, err := util.StringToFloat64(fields[1])
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "query threshold on line %d", i)
		}
		queries = append(queries, index.NewQuery(i, record, threshold))
	}
	return queries, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "open manifest %s", path)
	}
	defer f.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
