package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "release", cfg.HTTP.GinMode)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "file:toursapp.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.NotEmpty(t, cfg.HTTP.CORSOrigins)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":9090"
  gin_mode: "debug"
database:
  type: "mysql"
  host: "db.local"
  port: 3306
  user: "tours"
  password: "secret"
  name: "toursdb"
auth:
  jwt_secret: "from-file"
  token_lifetime: 2h
smtp:
  host: "mail.local"
  port: 2525
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "debug", cfg.HTTP.GinMode)
	assert.Equal(t, "mysql", cfg.Database.Type)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":7070")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_HOST", "pg.local")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "pg.local", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestDSNBuilders(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: 3306, User: "u", Password: "p", Name: "n"}
	assert.Equal(t, "u:p@tcp(h:3306)/n?parseTime=true&loc=Local&charset=utf8mb4", db.MySQLDSN())

	db.Port = 5432
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", db.PostgresDSN())

	db.SSLMode = "require"
	assert.Contains(t, db.PostgresDSN(), "sslmode=require")
}
