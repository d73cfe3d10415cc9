package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/geosync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Paths holds the filesystem locations used by geosync
type Paths struct {
	BaseDir     string
	StagingDir  string
	ConfigFile  string
	AppData     string
	ProfileName string
}

// Flags returns CLI flags for path configuration
func (c *Paths) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "base-dir",
			Usage:       "Directory holding config, staging and log directories (default: executable directory)",
			Destination: &c.BaseDir,
			Sources:     cli.EnvVars("GEOSYNC_BASE_DIR"),
		},
		&cli.StringFlag{
			Name:        "staging-dir",
			Usage:       "Download staging directory (default: <base-dir>/temp)",
			Destination: &c.StagingDir,
			Sources:     cli.EnvVars("GEOSYNC_STAGING_DIR"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Source URL config file, .toml or .yaml (default: <base-dir>/config.toml)",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("GEOSYNC_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "app-data",
			Usage:       "Application data root containing the mihomo-party directory (default: user config dir)",
			Destination: &c.AppData,
			Sources:     cli.EnvVars("GEOSYNC_APP_DATA", "APPDATA"),
		},
		&cli.StringFlag{
			Name:        "profile-name",
			Usage:       "Name of the mihomo-party directory under the app data root",
			Value:       types.DefaultProfileName,
			Destination: &c.ProfileName,
			Sources:     cli.EnvVars("GEOSYNC_PROFILE_NAME"),
		},
	}
}

// Resolve fills unset paths with their defaults
func (c *Paths) Resolve() error {
	if c.BaseDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return goerr.Wrap(err, "failed to locate executable")
		}
		c.BaseDir = filepath.Dir(exe)
	}
	if c.StagingDir == "" {
		c.StagingDir = filepath.Join(c.BaseDir, "temp")
	}
	if c.ConfigFile == "" {
		c.ConfigFile = filepath.Join(c.BaseDir, "config.toml")
	}
	if c.AppData == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return goerr.Wrap(err, "app data directory is not set, use --app-data or APPDATA")
		}
		c.AppData = dir
	}
	if c.ProfileName == "" {
		c.ProfileName = types.DefaultProfileName
	}
	return nil
}

// LogDir returns the default log directory
func (c *Paths) LogDir() string {
	return filepath.Join(c.BaseDir, "log")
}

// TestDir returns <app-data>/<profile>/test
func (c *Paths) TestDir() string {
	return filepath.Join(c.AppData, c.ProfileName, "test")
}

// WorkDir returns <app-data>/<profile>/work
func (c *Paths) WorkDir() string {
	return filepath.Join(c.AppData, c.ProfileName, "work")
}
