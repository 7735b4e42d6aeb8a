package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Warehouse struct {
		SeedFile string `mapstructure:"seed_file"` // xlsx с начальными остатками; пусто => демо-набор
	} `mapstructure:"warehouse"`

	Report struct {
		Cron string // расписание выгрузки журнала отгрузок; пусто => выключено
		Dir  string
	} `mapstructure:"report"`
}

// Load читает YAML и переменные окружения APP_* (например APP_HTTP_ADDR).
// Перед этим подгружается .env, если он есть.
func Load(path string) (Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("warehouse.seed_file", "")
	v.SetDefault("report.cron", "")
	v.SetDefault("report.dir", "reports")

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr must be provided")
	}
	if c.Report.Cron != "" && c.Report.Dir == "" {
		return errors.New("report.dir must be provided when report.cron is set")
	}
	return nil
}
