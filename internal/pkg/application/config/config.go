package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Settings holds the publisher's view of the world: where the hosting
// catalog lives and where the marketplace lives. Both URLs are stored
// without a trailing slash.
type Settings struct {
	SiteURL          string `yaml:"siteURL"`
	StoreURL         string `yaml:"storeURL"`
	DefaultImagePath string `yaml:"defaultImagePath"`
}

func Load(input io.Reader) (*Settings, error) {
	buf, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %s", err.Error())
	}

	settings := &Settings{}
	if err := yaml.Unmarshal(buf, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %s", err.Error())
	}

	if settings.SiteURL == "" {
		return nil, errors.New("siteURL must be set")
	}

	if settings.StoreURL == "" {
		return nil, errors.New("storeURL must be set")
	}

	settings.SiteURL = strings.TrimSuffix(settings.SiteURL, "/")
	settings.StoreURL = strings.TrimSuffix(settings.StoreURL, "/")

	return settings, nil
}

// LoadDefaultImage reads the fallback offering image and returns it
// base64 encoded, ready for the store's asset upload job.
func LoadDefaultImage(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read default image %s: %s", path, err.Error())
	}

	return base64.StdEncoding.EncodeToString(contents), nil
}
