package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	TokenSecret string
	FrontendURL string

	DatabaseURL      string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	OperatorWorkers int

	BudgetAlertGateDay      int
	BudgetAlertGateExceeded bool
}

// MissingEnvError lists every required variable that was blank at startup.
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Names, ", ")
}

// IsProduction reports whether cookies should be marked Secure.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ConnectionString returns DATABASE_URL when set, otherwise a DSN built from the
// POSTGRES_* pieces.
func (c *Config) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:                    "9446",
		Environment:             "development",
		PostgresAddress:         "localhost",
		PostgresPort:            "5433",
		PostgresDB:              "postgres",
		PostgresUsername:        "postgres",
		PostgresPassword:        "testpassword",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTL:         7 * 24 * time.Hour,
		OperatorWorkers:         4,
		BudgetAlertGateDay:      25,
		BudgetAlertGateExceeded: false,
	}

	setString(getenv, "PORT", &env.Port)
	setString(getenv, "ENVIRONMENT", &env.Environment)
	setString(getenv, "DATABASE_URL", &env.DatabaseURL)
	setString(getenv, "POSTGRES_ADDRESS", &env.PostgresAddress)
	setString(getenv, "POSTGRES_PORT", &env.PostgresPort)
	setString(getenv, "POSTGRES_DB", &env.PostgresDB)
	setString(getenv, "POSTGRES_USERNAME", &env.PostgresUsername)
	setString(getenv, "POSTGRES_PASSWORD", &env.PostgresPassword)

	env.TokenSecret = strings.TrimSpace(getenv("TOKEN_SECRET"))
	env.FrontendURL = strings.TrimSpace(getenv("FRONTEND_URL"))

	var missing []string
	if env.TokenSecret == "" {
		missing = append(missing, "TOKEN_SECRET")
	}
	if env.FrontendURL == "" {
		missing = append(missing, "FRONTEND_URL")
	}
	if len(missing) > 0 {
		return nil, &MissingEnvError{Names: missing}
	}

	if err := setDuration(getenv, "ACCESS_TOKEN_TTL", &env.AccessTokenTTL); err != nil {
		return nil, err
	}
	if err := setDuration(getenv, "REFRESH_TOKEN_TTL", &env.RefreshTokenTTL); err != nil {
		return nil, err
	}
	if err := setInt(getenv, "OPERATOR_WORKERS", &env.OperatorWorkers); err != nil {
		return nil, err
	}
	if err := setInt(getenv, "BUDGET_ALERT_GATE_DAY", &env.BudgetAlertGateDay); err != nil {
		return nil, err
	}
	if raw := strings.TrimSpace(getenv("BUDGET_ALERT_GATE_EXCEEDED")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("BUDGET_ALERT_GATE_EXCEEDED: %w", err)
		}
		env.BudgetAlertGateExceeded = v
	}

	return &env, nil
}

func setString(getenv func(string) string, name string, dst *string) {
	if v := strings.TrimSpace(getenv(name)); len(v) != 0 {
		*dst = v
	}
}

func setDuration(getenv func(string) string, name string, dst *time.Duration) error {
	raw := strings.TrimSpace(getenv(name))
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s: must be positive", name)
	}
	*dst = d
	return nil
}

func setInt(getenv func(string) string, name string, dst *int) error {
	raw := strings.TrimSpace(getenv(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = v
	return nil
}
