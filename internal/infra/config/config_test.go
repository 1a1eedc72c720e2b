package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func validEnv() map[string]string {
	return map[string]string{
		KeyPracticumToken: "practicum",
		KeyTelegramToken:  "telegram",
		KeyTelegramChatID: "12345",
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFrom(envOf(validEnv()))
	require.NoError(t, err)

	assert.Equal(t, "practicum", cfg.PracticumToken)
	assert.Equal(t, "telegram", cfg.TelegramToken)
	assert.Equal(t, int64(12345), cfg.TelegramChatID)
	assert.Equal(t, DefaultPracticumEndpoint, cfg.PracticumEndpoint)
	assert.Equal(t, 600*time.Second, cfg.RetryPeriod)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	env := validEnv()
	env["RETRY_PERIOD"] = "30s"
	env["REQUEST_TIMEOUT"] = "5s"
	env["PRACTICUM_ENDPOINT"] = "http://localhost:8080/statuses/"
	env["LOG_LEVEL"] = "DEBUG"
	env["ENVIRONMENT"] = "Production"

	cfg, err := loadFrom(envOf(env))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RetryPeriod)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "http://localhost:8080/statuses/", cfg.PracticumEndpoint)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_MissingCredentials(t *testing.T) {
	keys := []string{KeyPracticumToken, KeyTelegramToken, KeyTelegramChatID}
	for _, key := range keys {
		for _, value := range []string{"", "   "} {
			t.Run(key+"/"+value, func(t *testing.T) {
				env := validEnv()
				env[key] = value
				_, err := loadFrom(envOf(env))

				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, []string{key}, cfgErr.Missing)
				assert.Contains(t, err.Error(), key)
			})
		}
	}

	t.Run("ZeroChatID", func(t *testing.T) {
		env := validEnv()
		env[KeyTelegramChatID] = "0"
		_, err := loadFrom(envOf(env))

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, []string{KeyTelegramChatID}, cfgErr.Missing)
	})

	t.Run("AllMissing", func(t *testing.T) {
		_, err := loadFrom(envOf(nil))
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, keys, cfgErr.Missing)
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		KeyTelegramChatID: "not-a-number",
		"RETRY_PERIOD":    "ten minutes",
		"REQUEST_TIMEOUT": "-1s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			env := validEnv()
			env[key] = value
			_, err := loadFrom(envOf(env))

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Empty(t, cfgErr.Missing)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestAppConfig_Validate(t *testing.T) {
	cfg := &AppConfig{PracticumToken: "p", TelegramToken: "t"}
	var cfgErr *ConfigurationError
	require.ErrorAs(t, cfg.Validate(), &cfgErr)
	assert.Equal(t, []string{KeyTelegramChatID}, cfgErr.Missing)
}
