package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("默认值加环境变量即可启动", func(t *testing.T) {
		t.Setenv("USERCENTER_DATABASE_DBNAME", "testdb")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.Mode)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.False(t, cfg.OTel.Enable)
	})

	t.Run("环境变量覆盖默认值", func(t *testing.T) {
		t.Setenv("USERCENTER_DATABASE_DBNAME", "testdb")
		t.Setenv("USERCENTER_SERVER_PORT", "8080")
		t.Setenv("USERCENTER_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("缺少数据库名时报错", func(t *testing.T) {
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.dbname")
	})

	t.Run("开启追踪但缺端点时报错", func(t *testing.T) {
		t.Setenv("USERCENTER_DATABASE_DBNAME", "testdb")
		t.Setenv("USERCENTER_OTEL_ENABLE", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "otel.endpoint")
	})
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "usercenter",
		SSLMode:  "disable",
	}
	cfg.ConnTimeout = 5 * time.Second

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=usercenter")
	assert.Contains(t, dsn, "connect_timeout=5")
}
