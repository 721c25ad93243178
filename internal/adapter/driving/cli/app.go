package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/diillson/customer-analytics-dashboard-go/internal/application/usecase"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
	"github.com/diillson/customer-analytics-dashboard-go/pkg/version"
)

// dateLayout é o formato aceito por --from e --to, interpretado no fuso local.
const dateLayout = "2006-01-02"

// DashboardFactory monta o caso de uso a partir da configuração final.
type DashboardFactory func(cfg *types.Config) *usecase.DashboardUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	factory    DashboardFactory
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "customer-dashboard",
		Short:         "Customer Analytics Dashboard CLI",
		Version:       formattedVersion,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Customer Analytics Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("base-url", "u", "", fmt.Sprintf("Base URL of the analytics API (default %s)", types.DefaultBaseURL))
	flags.String("from", "", "Start date of the purchase frequency chart (YYYY-MM-DD)")
	flags.String("to", "", "End date of the purchase frequency chart (YYYY-MM-DD)")
	flags.String("sort", "", "Sort customers by total amount: asc or desc")
	flags.String("name", "", "Search customers by name")
	flags.Int64("select", 0, "Customer ID whose purchases are shown below the table")
	flags.BoolP("interactive", "i", false, "Start an interactive session")
	flags.Bool("no-banner", false, "Do not print the welcome banner")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("s3-bucket", "", "Upload exported reports to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded reports")
	flags.String("aws-profile", "", "AWS profile used for the S3 upload")
	flags.String("aws-region", "", "AWS region used for the S3 upload")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext runs the CLI application; ctx is cancelled on interrupt.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetConfigRepository define o repositório usado para carregar e validar a configuração.
func (app *CLIApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}

// SetDashboardFactory define como o caso de uso é criado depois que a configuração é resolvida.
func (app *CLIApp) SetDashboardFactory(factory DashboardFactory) {
	app.factory = factory
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	baseURL, _ := flags.GetString("base-url")
	fromStr, _ := flags.GetString("from")
	toStr, _ := flags.GetString("to")
	sortBy, _ := flags.GetString("sort")
	name, _ := flags.GetString("name")
	selectID, _ := flags.GetInt64("select")
	interactive, _ := flags.GetBool("interactive")
	noBanner, _ := flags.GetBool("no-banner")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	awsProfile, _ := flags.GetString("aws-profile")
	awsRegion, _ := flags.GetString("aws-region")

	from, err := parseDate(fromStr)
	if err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}

	sortBy = strings.ToLower(strings.TrimSpace(sortBy))
	switch entity.SortDirection(sortBy) {
	case entity.SortNone, entity.SortAsc, entity.SortDesc:
	default:
		return nil, fmt.Errorf("--sort %q: %w", sortBy, types.ErrInvalidSortDirection)
	}

	var selected *int64
	if flags.Changed("select") {
		if selectID <= 0 {
			return nil, fmt.Errorf("--select %d: %w", selectID, types.ErrInvalidCustomerID)
		}
		selected = &selectID
	}

	// Convert to absolute path
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		BaseURL:     baseURL,
		From:        from,
		To:          to,
		SortBy:      sortBy,
		Name:        name,
		Select:      selected,
		Interactive: interactive,
		NoBanner:    noBanner,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		S3Bucket:    s3Bucket,
		S3Prefix:    s3Prefix,
		AWSProfile:  awsProfile,
		AWSRegion:   awsRegion,
	}

	return args, nil
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", value, types.ErrInvalidDate)
	}
	return &t, nil
}

// resolveConfig combina arquivo, ambiente e flags, nessa ordem, e valida o resultado.
func (app *CLIApp) resolveConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := &types.Config{}

	if args.ConfigFile != "" {
		if app.configRepo == nil {
			return nil, fmt.Errorf("config file %s given but no config loader is set", args.ConfigFile)
		}
		loaded, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if app.configRepo != nil {
		if err := app.configRepo.ApplyEnvironment(cfg); err != nil {
			return nil, err
		}
	}

	flags := app.rootCmd.Flags()
	overrideString := func(flag string, target *string, value string) {
		if flags.Changed(flag) {
			*target = value
		}
	}
	overrideString("base-url", &cfg.BaseURL, args.BaseURL)
	overrideString("report-name", &cfg.ReportName, args.ReportName)
	overrideString("dir", &cfg.Dir, args.Dir)
	overrideString("s3-bucket", &cfg.S3Bucket, args.S3Bucket)
	overrideString("s3-prefix", &cfg.S3Prefix, args.S3Prefix)
	overrideString("aws-profile", &cfg.AWSProfile, args.AWSProfile)
	overrideString("aws-region", &cfg.AWSRegion, args.AWSRegion)
	if flags.Changed("report-type") {
		cfg.ReportType = args.ReportType
	}

	// Valores padrão para o que continua vazio
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultBaseURL
	}
	if len(cfg.ReportType) == 0 {
		cfg.ReportType = args.ReportType
	}
	if cfg.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.Dir = cwd
	}
	for i, t := range cfg.ReportType {
		cfg.ReportType[i] = strings.ToLower(strings.TrimSpace(t))
	}

	if app.configRepo != nil {
		if err := app.configRepo.Validate(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	cfg, err := app.resolveConfig(cliArgs)
	if err != nil {
		return err
	}

	if !cliArgs.NoBanner {
		displayWelcomeBanner(app.version)
	}

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	if app.factory == nil {
		return fmt.Errorf("dashboard is not configured")
	}
	dashboard := app.factory(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cliArgs.Interactive {
		return newInteractiveSession(dashboard, cfg).Run(ctx)
	}
	return dashboard.RunDashboard(ctx, cliArgs, cfg)
}
