package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// EnvPrefix é o prefixo das variáveis de ambiente lidas pelo dashboard (ex.: DASHBOARD_BASE_URL).
const EnvPrefix = "DASHBOARD"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	validate *validator.Validate
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// ApplyEnvironment sobrescreve os campos de cfg com as variáveis DASHBOARD_* definidas.
// Variáveis ausentes mantêm o valor vindo do arquivo.
func (r *ConfigRepositoryImpl) ApplyEnvironment(cfg *types.Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("error reading %s_* environment: %w", EnvPrefix, err)
	}
	return nil
}

// Validate verifica a configuração final, já com flags e valores padrão aplicados.
func (r *ConfigRepositoryImpl) Validate(cfg *types.Config) error {
	err := r.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		first := invalid[0]
		return fmt.Errorf("invalid config: field %s failed %q (value %v): %w",
			first.Namespace(), first.Tag(), first.Value(), err)
	}
	return fmt.Errorf("invalid config: %w", err)
}
