package main

import (
	"flag"
	"runtime"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lintang-b-s/geodabs/pkg"
	"github.com/lintang-b-s/geodabs/pkg/dataset"
	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/logger"
)

var (
	datasetManifest = flag.String("dataset", "./data/dataset.txt", "manifest listing trajectory files, one per line")
	queryManifest   = flag.String("queries", "./data/queries.txt", "query manifest: \"<file> <threshold>\" per line")
	outputDir       = flag.String("output", "./data/responses", "directory the response files are written to")
	useGeohashIndex = flag.Bool("geohash_index", false, "use the per-point geohash index instead of geodab")
)

// batch mode: ingest the corpus once, answer every query of the
// manifest and write one response file per query.
func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("GEODAB_BITS", pkg.DEFAULT_NORMALIZATION_BITS)
	viper.SetDefault("GEODAB_T", pkg.DEFAULT_T)
	viper.SetDefault("GEODAB_K", pkg.DEFAULT_K)

	records, err := dataset.ReadDataset(*datasetManifest)
	if err != nil {
		logger.Fatal("read dataset", zap.Error(err))
	}

	var idx index.TrajectoryIndex
	if *useGeohashIndex {
		idx = index.NewGeohashIndex(pkg.DEFAULT_GEOHASH_INDEX_BITS)
	} else {
		idx = index.NewGeodabIndex(viper.GetInt("GEODAB_BITS"),
			viper.GetInt("GEODAB_T"), viper.GetInt("GEODAB_K"))
	}
	idx.Add(records)
	logger.Info("index built", zap.Int("records", len(records)))

	queries, err := dataset.ReadQueries(*queryManifest)
	if err != nil {
		logger.Fatal("read queries", zap.Error(err))
	}

	// The index is sealed, queries fan out over all cores.
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for _, q := range queries {
		g.Go(func() error {
			response := idx.Query(q)
			return dataset.WriteResponse(*outputDir, response)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("answer queries", zap.Error(err))
	}
	logger.Info("batch done", zap.Int("queries", len(queries)))
}
