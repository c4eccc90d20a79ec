package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CREDITS_HOME", "")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	base := filepath.Join(home, ".portal-credits")
	assert.Equal(t, base, cfg.Home)
	assert.Equal(t, filepath.Join(base, "credits.json"), cfg.LogPath)
	assert.Equal(t, filepath.Join(base, "profiles"), cfg.ProfilesDir)
	assert.Equal(t, filepath.Join(base, "profiles.toml"), cfg.ProfilesRegistry)
	assert.Equal(t, 30*time.Second, cfg.Browser.IdleWait)
	assert.False(t, cfg.Debug)

	assert.Equal(t, "https://my.teamio.com/recruit/dashboard", cfg.Portals[domain.PortalTeamio].URL)
	assert.Equal(t, "https://my.teamio.com/recruit/dashboard", cfg.Portals[domain.PortalTeamio].LoginURL)
	assert.Empty(t, cfg.Portals[domain.PortalTeamio].Locator)
	assert.Equal(t, "https://www.fajnsprava.cz/prihlasit.html", cfg.Portals[domain.PortalInWork].URL)
	assert.Equal(t, cfg.Portals[domain.PortalInWork].URL, cfg.Portals[domain.PortalInWork].LoginURL)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CREDITS_HOME", filepath.Join(home, "data"))
	t.Setenv("TEAMIO_CREDITS_URL", "https://acme.teamio.com/dashboard")
	t.Setenv("TEAMIO_CREDITS_LOCATOR", "[data-testid='credits-balance']")
	t.Setenv("INWORK_DASHBOARD_URL", "https://www.fajnsprava.cz/firma/prehled")
	t.Setenv("CREDITS_FILE", filepath.Join(home, "elsewhere.json"))
	t.Setenv("CREDITS_IDLE_WAIT", "5s")
	t.Setenv("CREDITS_DEBUG", "1")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data"), cfg.Home)
	assert.Equal(t, filepath.Join(home, "data", "profiles"), cfg.ProfilesDir)
	assert.Equal(t, filepath.Join(home, "elsewhere.json"), cfg.LogPath)
	assert.Equal(t, 5*time.Second, cfg.Browser.IdleWait)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "https://acme.teamio.com/dashboard", cfg.Portals[domain.PortalTeamio].URL)
	assert.Equal(t, "https://acme.teamio.com/dashboard", cfg.Portals[domain.PortalTeamio].LoginURL)
	assert.Equal(t, "[data-testid='credits-balance']", cfg.Portals[domain.PortalTeamio].Locator)
	assert.Equal(t, "https://www.fajnsprava.cz/firma/prehled", cfg.Portals[domain.PortalInWork].URL)
	assert.Equal(t, "https://www.fajnsprava.cz/firma/prehled", cfg.Portals[domain.PortalInWork].LoginURL)
}

func TestLoadExplicitLoginURLWins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CREDITS_HOME", "")
	t.Setenv("TEAMIO_CREDITS_URL", "https://acme.teamio.com/dashboard")
	t.Setenv("TEAMIO_LOGIN_URL", "https://acme.teamio.com/login")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.teamio.com/login", cfg.Portals[domain.PortalTeamio].LoginURL)
}

func TestLoadConfigFileThenEnvPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CREDITS_HOME", "")

	configDir := filepath.Join(home, ".portal-credits")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[log]
path = "~/credits-history.json"

[teamio]
url = "https://file.teamio.com/dashboard"
locator = "#from-file"

[inwork]
locator = ".kredity"
`), 0o600))

	t.Setenv("TEAMIO_CREDITS_LOCATOR", "#from-env")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "credits-history.json"), cfg.LogPath)
	assert.Equal(t, "https://file.teamio.com/dashboard", cfg.Portals[domain.PortalTeamio].URL)
	assert.Equal(t, "#from-env", cfg.Portals[domain.PortalTeamio].Locator)
	assert.Equal(t, ".kredity", cfg.Portals[domain.PortalInWork].Locator)
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := Load(viper.New(), filepath.Join(home, "missing.toml"))
	assert.ErrorContains(t, err, "read config file")
}

func TestTargetPerPortal(t *testing.T) {
	t.Parallel()

	cfg := Config{
		ProfilesDir: "/data/profiles",
		Portals: map[domain.Portal]PortalConfig{
			domain.PortalTeamio: {URL: "https://t", LoginURL: "https://t/login", Locator: "#c"},
			domain.PortalInWork: {URL: "https://i", LoginURL: "https://i"},
		},
	}

	teamio := cfg.Target(domain.PortalTeamio)
	assert.Equal(t, domain.PortalTeamio, teamio.Portal)
	assert.Equal(t, "https://t", teamio.URL)
	assert.Equal(t, "https://t/login", teamio.LoginURL)
	assert.Equal(t, "#c", teamio.Locator)
	assert.True(t, teamio.ReloadAfterConfirm)
	assert.True(t, teamio.RequireProfile)
	assert.Contains(t, teamio.Instructions, "1486  kreditů")

	inwork := cfg.Target(domain.PortalInWork)
	assert.False(t, inwork.ReloadAfterConfirm)
	assert.False(t, inwork.RequireProfile)
	assert.Contains(t, inwork.Instructions, "Stav kreditů")

	assert.Equal(t, filepath.Join("/data/profiles", "teamio"), cfg.ProfileDir(domain.PortalTeamio))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{LogPath: "/c.json", ProfilesDir: "/p", Portals: map[domain.Portal]PortalConfig{domain.PortalTeamio: {URL: "https://t"}}}
	assert.NoError(t, valid.Validate())

	noURL := valid
	noURL.Portals = map[domain.Portal]PortalConfig{domain.PortalInWork: {}}
	assert.ErrorContains(t, noURL.Validate(), "InWork url is empty")

	negative := valid
	negative.Browser.IdleWait = -time.Second
	assert.ErrorContains(t, negative.Validate(), "negative")
}
