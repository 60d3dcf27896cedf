// Package store loads the nodo configuration and reads and writes nodos
// below the configured root directory.
package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/nodo/pkg/files"
	_ "tableflip.dev/nodo/pkg/files/markdown"
)

// Config is the effective nodo configuration.
type Config struct {
	RootDir            string   `json:"root_dir" yaml:"root_dir"`
	DateFormat         string   `json:"date_format" yaml:"date_format"`
	DefaultFiletype    string   `json:"default_filetype" yaml:"default_filetype"`
	TempDir            string   `json:"temp_dir" yaml:"temp_dir"`
	ArchiveDir         string   `json:"archive_dir" yaml:"archive_dir"`
	SortTasks          bool     `json:"sort_tasks" yaml:"sort_tasks"`
	OverviewIgnoreDirs []string `json:"overview_ignore_dirs" yaml:"overview_ignore_dirs"`
	Editor             string   `json:"editor" yaml:"editor"`

	// File is the config file that was read, empty when defaults are used.
	File string `json:"-" yaml:"-"`
}

// BasePath is the directory every target is relative to.
func (c *Config) BasePath() string {
	return c.RootDir
}

// FileOptions are the handler options derived from the config.
func (c *Config) FileOptions() files.Options {
	return files.Options{DateFormat: c.DateFormat}
}

// Handler returns the file handler of the default filetype.
func (c *Config) Handler() (files.Handler, error) {
	return files.ForExtension(c.DefaultFiletype)
}

// LoadConfig reads .nodo.yaml from path, $NODO_CONFIG_PATH, the XDG config
// directory or the home directory, in that order. A missing file is not an
// error. Values may be overridden by NODO_* environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("root_dir", "~/nodo")
	v.SetDefault("date_format", files.DefaultDateFormat)
	v.SetDefault("default_filetype", "md")
	v.SetDefault("temp_dir", "")
	v.SetDefault("archive_dir", "")
	v.SetDefault("sort_tasks", false)
	v.SetDefault("overview_ignore_dirs", []string{})
	v.SetDefault("editor", defaultEditor())
	v.SetEnvPrefix("NODO")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".nodo") // .yaml is implicit
		if override := os.Getenv("NODO_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "nodo"))
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	root, err := homedir.Expand(v.GetString("root_dir"))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		RootDir:            filepath.Clean(root),
		DateFormat:         v.GetString("date_format"),
		DefaultFiletype:    v.GetString("default_filetype"),
		SortTasks:          v.GetBool("sort_tasks"),
		OverviewIgnoreDirs: v.GetStringSlice("overview_ignore_dirs"),
		Editor:             v.GetString("editor"),
		File:               v.ConfigFileUsed(),
	}
	if cfg.TempDir, err = cfg.dir(v.GetString("temp_dir"), ".temp"); err != nil {
		return nil, err
	}
	if cfg.ArchiveDir, err = cfg.dir(v.GetString("archive_dir"), ".archive"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// dir expands a configured directory, relative values are below RootDir.
func (c *Config) dir(value, fallback string) (string, error) {
	if value == "" {
		return filepath.Join(c.RootDir, fallback), nil
	}
	p, err := homedir.Expand(value)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.RootDir, p)
	}
	return filepath.Clean(p), nil
}

func defaultEditor() string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if e := os.Getenv(env); e != "" {
			return e
		}
	}
	return "vi"
}
