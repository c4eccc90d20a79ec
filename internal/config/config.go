package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/portal-credits/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	homeDir    = ".portal-credits"

	keyHome             = "home"
	keyLogPath          = "log.path"
	keyProfilesDir      = "profiles.dir"
	keyProfilesRegistry = "profiles.registry"
	keyBrowserExecPath  = "browser.exec_path"
	keyBrowserIdleWait  = "browser.idle_wait"
	keyDebug            = "debug"

	defaultTeamioURL = "https://my.teamio.com/recruit/dashboard"
	defaultInWorkURL = "https://www.fajnsprava.cz/prihlasit.html"
	defaultIdleWait  = 30 * time.Second
)

// Config is resolved once at startup and passed down explicitly.
type Config struct {
	Home             string
	LogPath          string
	ProfilesDir      string
	ProfilesRegistry string
	Browser          BrowserConfig
	Portals          map[domain.Portal]PortalConfig
	Debug            bool
}

type BrowserConfig struct {
	ExecPath string
	IdleWait time.Duration
}

type PortalConfig struct {
	URL      string
	LoginURL string
	Locator  string
}

type portalKeys struct {
	url, loginURL, locator string
	urlEnv, loginEnv       string
	locatorEnv             string
}

var portalEnv = map[domain.Portal]portalKeys{
	domain.PortalTeamio: {
		url: "teamio.url", loginURL: "teamio.login_url", locator: "teamio.locator",
		urlEnv: "TEAMIO_CREDITS_URL", loginEnv: "TEAMIO_LOGIN_URL", locatorEnv: "TEAMIO_CREDITS_LOCATOR",
	},
	domain.PortalInWork: {
		url: "inwork.url", loginURL: "inwork.login_url", locator: "inwork.locator",
		urlEnv: "INWORK_DASHBOARD_URL", loginEnv: "INWORK_LOGIN_URL", locatorEnv: "INWORK_CREDITS_LOCATOR",
	},
}

// Load resolves configuration with precedence env > config file > defaults.
// An empty configFile looks for config.toml in the home directory.
func Load(cfg *viper.Viper, configFile string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	if err := cfg.BindEnv(keyHome, "CREDITS_HOME"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}
	cfg.SetDefault(keyHome, filepath.Join(userHome, homeDir))
	home := expandHome(cfg.GetString(keyHome), userHome)

	if configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(home)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	bindings := map[string]string{
		keyLogPath:          "CREDITS_FILE",
		keyProfilesDir:      "CREDITS_PROFILES_DIR",
		keyProfilesRegistry: "CREDITS_PROFILES_REGISTRY",
		keyBrowserExecPath:  "CREDITS_BROWSER",
		keyBrowserIdleWait:  "CREDITS_IDLE_WAIT",
		keyDebug:            "CREDITS_DEBUG",
	}
	for _, keys := range portalEnv {
		bindings[keys.url] = keys.urlEnv
		bindings[keys.loginURL] = keys.loginEnv
		bindings[keys.locator] = keys.locatorEnv
	}
	for key, env := range bindings {
		if err := cfg.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg.SetDefault(keyLogPath, filepath.Join(home, "credits.json"))
	cfg.SetDefault(keyProfilesDir, filepath.Join(home, "profiles"))
	cfg.SetDefault(keyProfilesRegistry, filepath.Join(home, "profiles.toml"))
	cfg.SetDefault(keyBrowserIdleWait, defaultIdleWait)
	cfg.SetDefault(portalEnv[domain.PortalTeamio].url, defaultTeamioURL)
	cfg.SetDefault(portalEnv[domain.PortalInWork].url, defaultInWorkURL)

	resolved := Config{
		Home:             home,
		LogPath:          expandHome(cfg.GetString(keyLogPath), userHome),
		ProfilesDir:      expandHome(cfg.GetString(keyProfilesDir), userHome),
		ProfilesRegistry: expandHome(cfg.GetString(keyProfilesRegistry), userHome),
		Browser: BrowserConfig{
			ExecPath: cfg.GetString(keyBrowserExecPath),
			IdleWait: cfg.GetDuration(keyBrowserIdleWait),
		},
		Portals: make(map[domain.Portal]PortalConfig, len(portalEnv)),
		Debug:   cfg.GetBool(keyDebug),
	}

	for portal, keys := range portalEnv {
		pc := PortalConfig{
			URL:      strings.TrimSpace(cfg.GetString(keys.url)),
			LoginURL: strings.TrimSpace(cfg.GetString(keys.loginURL)),
			Locator:  strings.TrimSpace(cfg.GetString(keys.locator)),
		}
		if pc.LoginURL == "" {
			pc.LoginURL = pc.URL
		}
		resolved.Portals[portal] = pc
	}

	if err := resolved.Validate(); err != nil {
		return Config{}, err
	}

	return resolved, nil
}

func (c Config) Validate() error {
	if c.LogPath == "" {
		return errors.New("credits log path is empty")
	}
	if c.ProfilesDir == "" {
		return errors.New("profiles directory is empty")
	}
	if c.Browser.IdleWait < 0 {
		return fmt.Errorf("browser idle wait %s is negative", c.Browser.IdleWait)
	}
	for portal, pc := range c.Portals {
		if pc.URL == "" {
			return fmt.Errorf("%s url is empty", portal.Label())
		}
	}

	return nil
}

// ProfileDir is the persistent browser user-data directory for a portal.
func (c Config) ProfileDir(portal domain.Portal) string {
	return filepath.Join(c.ProfilesDir, string(portal))
}

// Target builds the acquisition settings for a portal.
func (c Config) Target(portal domain.Portal) domain.PortalTarget {
	pc := c.Portals[portal]
	target := domain.PortalTarget{
		Portal:   portal,
		URL:      pc.URL,
		LoginURL: pc.LoginURL,
		Locator:  pc.Locator,
	}

	switch portal {
	case domain.PortalTeamio:
		target.ReloadAfterConfirm = true
		target.RequireProfile = true
		target.Instructions = "Check that the Teamio dashboard with 'Zbývající předplatné' and a line like '1486  kreditů' is open.\n" +
			"If a login screen is shown, log in (including the e-mail 2FA step) until the dashboard appears."
	case domain.PortalInWork:
		target.Instructions = "Log in to InWork/Fajnsprava (e-mail, password, SMS/2FA if asked)\n" +
			"and open the page showing 'Stav kreditů: X'."
	}

	return target
}

func expandHome(path, userHome string) string {
	if path == "~" {
		return userHome
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHome, path[2:])
	}
	return path
}
