package main

import (
	"context"
	"log"
	"os"

	"github.com/textwatch/textwatch/internal/buildinfo"
	"github.com/textwatch/textwatch/internal/client/cli"
	"github.com/textwatch/textwatch/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
