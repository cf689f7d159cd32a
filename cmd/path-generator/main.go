package main

import (
	"flag"

	"github.com/lintang-b-s/interstatex/pkg/datastructure"
	"github.com/lintang-b-s/interstatex/pkg/graphbuilder"
	"github.com/lintang-b-s/interstatex/pkg/graphson"
	"github.com/lintang-b-s/interstatex/pkg/logger"
	"github.com/lintang-b-s/interstatex/pkg/util"
)

var (
	configDir = flag.String("config_dir", "./data/", "directory holding the optional config file")
)

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

	builder := graphbuilder.NewGraphBuilder(datastructure.PrimaryInterstates(), datastructure.CityCoordinates(), logger)
	res := builder.BuildPathGraph()

	outputFile := config.OutputPath(config.PathOutputFile)
	stats, err := graphson.WriteFile(outputFile, res.Elements)
	if err != nil {
		panic(err)
	}

	logger.Sugar().Info(stats.Summary(outputFile))
}
