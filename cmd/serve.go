package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"talentmatch/internal/logger"
	"talentmatch/internal/server"
)

const defaultListen = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the matching engine over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		logger.Fatal("config is required")
	}

	runner, st, err := buildRunner(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the match runner", zap.Error(err))
	}
	defer st.Close()

	listen := defaultListen
	if config.Server != nil && config.Server.Listen != "" {
		listen = config.Server.Listen
	}

	logger.Info("starting talentmatch http server", zap.String("version", version), zap.String("listen", listen))

	srv := server.New(server.Config{Listen: listen}, runner, st, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
