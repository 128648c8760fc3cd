package main

import (
	"context"
	"flag"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lintang-b-s/geodabs/pkg"
	"github.com/lintang-b-s/geodabs/pkg/dataset"
	"github.com/lintang-b-s/geodabs/pkg/engine"
	"github.com/lintang-b-s/geodabs/pkg/http"
	"github.com/lintang-b-s/geodabs/pkg/http/usecases"
	"github.com/lintang-b-s/geodabs/pkg/logger"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

var (
	datasetManifest       = flag.String("dataset", "./data/dataset.txt", "manifest listing trajectory files, one per line")
	useRateLimit          = flag.Bool("rate_limit", false, "enable the shared token-bucket rate limiter")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 50.0, "leaf node (r-tree) bounding box padding in meters")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("GEODAB_BITS", pkg.DEFAULT_NORMALIZATION_BITS)
	viper.SetDefault("GEODAB_T", pkg.DEFAULT_T)
	viper.SetDefault("GEODAB_K", pkg.DEFAULT_K)
	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file, using defaults", zap.Error(err))
	}

	records, err := dataset.ReadDataset(*datasetManifest)
	if err != nil {
		logger.Fatal("read dataset", zap.Error(err))
	}
	logger.Info("dataset loaded", zap.Int("records", len(records)))

	similarityEngine := engine.NewSimilarityEngine(logger,
		viper.GetInt("GEODAB_BITS"), viper.GetInt("GEODAB_T"), viper.GetInt("GEODAB_K"))
	similarityEngine.Build(records, *leafBoundingBoxRadius)

	api := http.NewServer(logger)
	similarityService := usecases.NewSimilarityService(logger, similarityEngine)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := api.Use(ctx, logger, *useRateLimit, similarityService); err != nil {
		logger.Fatal("start api", zap.Error(err))
	}

	signal := http.GracefulShutdown()

	logger.Info("Geodabs similarity engine stopped", zap.String("signal", signal.String()))
	cancel()
}
