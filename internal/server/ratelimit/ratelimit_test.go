package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(rules ...Rule) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Exempt:        map[string]bool{},
		Rules:         rules,
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/submit-answer", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_BurstThenBlocked(t *testing.T) {
	l := NewLimiter(testConfig(Rule{
		Path: "/api/upload-resume", Method: "POST",
		Limit: 10, Window: time.Hour, Burst: 3,
	}))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/api/upload-resume", "POST")
		assert.True(t, allowed, "request %d within burst", i)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/upload-resume", "POST")
	assert.False(t, allowed)
	assert.Zero(t, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(Rule{
		Path: "/api/upload-resume", Method: "POST",
		Limit: 1, Window: time.Hour, Burst: 1,
	}))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/api/upload-resume", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/api/upload-resume", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/api/upload-resume", "POST")
	assert.True(t, allowed, "a second client has its own bucket")
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		allowed, info := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
		require.Zero(t, info.Limit)
	}
}

func TestLimiter_ExemptClient(t *testing.T) {
	cfg := testConfig(Rule{
		Path: "/api/upload-resume", Method: "POST",
		Limit: 1, Window: time.Hour, Burst: 1,
	})
	cfg.Exempt["10.0.0.1"] = true

	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/api/upload-resume", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_DefaultLimitForUnmatchedPath(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 2
	cfg.DefaultWindow = time.Hour

	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/api/session-status/abc", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	l.Allow("1.2.3.4", "/api/session-status/abc", "GET")
	allowed, _ = l.Allow("1.2.3.4", "/api/session-status/abc", "GET")
	assert.False(t, allowed)
}

func TestMatchRule(t *testing.T) {
	rules := []Rule{
		{Path: "/api/upload-resume", Method: "POST", Limit: 20},
		{Path: "/api/session/", Method: "DELETE", Limit: 50},
	}

	t.Run("exact match", func(t *testing.T) {
		rule := matchRule("/api/upload-resume", "POST", rules)
		require.NotNil(t, rule)
		assert.Equal(t, 20, rule.Limit)
	})

	t.Run("prefix match", func(t *testing.T) {
		rule := matchRule("/api/session/some-id", "DELETE", rules)
		require.NotNil(t, rule)
		assert.Equal(t, 50, rule.Limit)
	})

	t.Run("method mismatch", func(t *testing.T) {
		assert.Nil(t, matchRule("/api/upload-resume", "GET", rules))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, matchRule("/api/other", "POST", rules))
	})

	t.Run("health unlimited", func(t *testing.T) {
		rule := matchRule("/health", "GET", rules)
		require.NotNil(t, rule)
		assert.Zero(t, rule.Limit)
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 300, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.Rules)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_EXEMPT", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.True(t, cfg.Exempt["10.0.0.1"])
	assert.True(t, cfg.Exempt["10.0.0.2"])
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
