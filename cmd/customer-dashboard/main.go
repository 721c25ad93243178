package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diillson/customer-analytics-dashboard-go/internal/adapter/driven/api"
	"github.com/diillson/customer-analytics-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/customer-analytics-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/customer-analytics-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/customer-analytics-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/customer-analytics-dashboard-go/internal/application/usecase"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
	"github.com/diillson/customer-analytics-dashboard-go/pkg/console"
	"github.com/diillson/customer-analytics-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios que não dependem da configuração
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	app.SetConfigRepository(configRepo)

	// O cliente da API e o publisher dependem da configuração final
	app.SetDashboardFactory(func(cfg *types.Config) *usecase.DashboardUseCase {
		var publisher repository.ReportPublisher
		if cfg.S3Bucket != "" {
			publisher = aws.NewS3Publisher(cfg.S3Bucket, cfg.S3Prefix, cfg.AWSProfile, cfg.AWSRegion)
		}

		return usecase.NewDashboardUseCase(
			api.NewAnalyticsRepository(cfg.BaseURL),
			exportRepo,
			publisher,
			consoleImpl,
		)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Executa o aplicativo
	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
