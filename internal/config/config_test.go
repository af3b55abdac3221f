package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SIMULATION_SEED", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PREDICTION_ITERATIONS", "")
	t.Setenv("PREDICTION_WORKERS", "")
	t.Setenv("PREDICTION_MIN_WEEK", "")
	t.Setenv("REDIS_ENABLED", "")
	t.Setenv("UPTRACE_ENABLED", "")
	t.Setenv("PYROSCOPE_ENABLED", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
	}
	if cfg.SimulationSeed != nil {
		t.Fatalf("expected unseeded simulation by default")
	}
	if cfg.PredictionIterations != 1000 || cfg.PredictionWorkers != 4 || cfg.PredictionMinWeek != 4 {
		t.Fatalf("unexpected prediction defaults: %+v", cfg)
	}
	if cfg.RedisEnabled || !cfg.RedisCircuitEnabled || cfg.RedisPredictionTTL != 10*time.Minute {
		t.Fatalf("unexpected redis defaults: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected pyroscope app name to default to service name")
	}
}

func TestLoad_SimulationSeed(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("parses int64", func(t *testing.T) {
		t.Setenv("SIMULATION_SEED", "-42")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SimulationSeed == nil || *cfg.SimulationSeed != -42 {
			t.Fatalf("unexpected seed: %v", cfg.SimulationSeed)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Setenv("SIMULATION_SEED", "abc")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid SIMULATION_SEED")
		}
	})
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "storage driver", env: map[string]string{"STORAGE_DRIVER": "mongo"}},
		{name: "zero iterations", env: map[string]string{"PREDICTION_ITERATIONS": "0"}},
		{name: "zero workers", env: map[string]string{"PREDICTION_WORKERS": "0"}},
		{name: "negative min week", env: map[string]string{"PREDICTION_MIN_WEEK": "-1"}},
		{name: "cache ttl", env: map[string]string{"CACHE_TTL": "0s"}},
		{name: "redis ttl", env: map[string]string{"REDIS_PREDICTION_TTL": "soon"}},
		{name: "redis circuit threshold", env: map[string]string{"REDIS_CIRCUIT_FAILURE_THRESHOLD": "0"}},
		{name: "uptrace without dsn", env: map[string]string{"UPTRACE_ENABLED": "true", "UPTRACE_DSN": ""}},
		{name: "pyroscope without server", env: map[string]string{"PYROSCOPE_ENABLED": "true", "PYROSCOPE_SERVER_ADDRESS": ""}},
		{name: "cors empty", env: map[string]string{"CORS_ALLOWED_ORIGINS": " , "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PREDICTION_ITERATIONS=250\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PREDICTION_ITERATIONS", "")
	os.Unsetenv("PREDICTION_ITERATIONS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PredictionIterations != 250 {
		t.Fatalf("expected .env value, got %d", cfg.PredictionIterations)
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" http://a.test, ,http://b.test ")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected split: %#v", got)
	}
}
