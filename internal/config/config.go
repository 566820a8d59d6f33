package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when the caller passes an empty path.
const DefaultPath = "docmill.yaml"

type Config struct {
	Site struct {
		DocsDir string `yaml:"docs_dir"`
	} `yaml:"site"`
	GitHub struct {
		BaseURL           string `yaml:"base_url"`
		BranchPlaceholder string `yaml:"branch_placeholder"`
	} `yaml:"github"`
	// Links maps bracketed link labels to their rewritten targets,
	// e.g. "[architecture]" -> "architecture.md".
	Links  map[string]string `yaml:"links"`
	Schema struct {
		PackageGlob string `yaml:"package_glob"`
	} `yaml:"schema"`
}

// Load reads the YAML config, layering .env and DOCMILL_* environment
// variables on top. A missing config file is not an error; defaults apply so
// the tool works in a bare checkout.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	cfg := defaults()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, err
	}

	// 3. Override with environment variables if present
	if docsDir := os.Getenv("DOCMILL_DOCS_DIR"); docsDir != "" {
		cfg.Site.DocsDir = docsDir
	}
	if base := os.Getenv("DOCMILL_GITHUB_BASE"); base != "" {
		cfg.GitHub.BaseURL = base
	}

	if cfg.Site.DocsDir == "" {
		cfg.Site.DocsDir = "docs"
	}
	if cfg.GitHub.BranchPlaceholder == "" {
		cfg.GitHub.BranchPlaceholder = "{branch_name}"
	}
	if cfg.Schema.PackageGlob == "" {
		cfg.Schema.PackageGlob = "**/data-package.json"
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Site.DocsDir = "docs"
	cfg.GitHub.BranchPlaceholder = "{branch_name}"
	cfg.Schema.PackageGlob = "**/data-package.json"
	cfg.Links = map[string]string{}
	return cfg
}
