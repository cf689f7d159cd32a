package main

import (
	"context"
	"flag"
	"os"

	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/logger"
	"github.com/lintang-b-s/interstatex/pkg/util"
	"github.com/lintang-b-s/interstatex/pkg/verifier"
	"go.uber.org/zap"
)

var (
	configDir     = flag.String("config_dir", "./data/", "directory holding the optional config file")
	useRouteTable = flag.Bool("route_table", true, "compare edge & city counts with the built-in route table")
)

// usage: graphson-verifier [-config_dir dir] [file.graphson ...]
// with no files, both generator outputs from the config are verified.
func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config, err := util.LoadConfig(*configDir)
	if err != nil {
		panic(err)
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{
			config.OutputPath(config.ServesOutputFile),
			config.OutputPath(config.PathOutputFile),
		}
	}

	var routes *datastructure.RouteTable
	if *useRouteTable {
		routes = datastructure.PrimaryInterstates()
	}
	v := verifier.NewVerifier(routes, datastructure.CityCoordinates(), config.LengthTolerance,
		config.ColocatedRadius, logger)

	reports, err := v.VerifyFiles(context.Background(), files)
	if err != nil {
		logger.Error("verification failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	failed := false
	for _, report := range reports {
		verifier.LogReport(logger, report)
		failed = failed || report.HasErrors()
	}
	if failed {
		logger.Sync()
		os.Exit(1)
	}
}
