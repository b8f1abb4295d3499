package config

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLoadTrimsTrailingSlashes(t *testing.T) {
	is := is.New(t)

	settings, err := Load(strings.NewReader(settingsYaml))
	is.NoErr(err)

	is.Equal(settings.SiteURL, "https://catalog.example.com")
	is.Equal(settings.StoreURL, "https://store.example.com")
}

func TestLoadFailsOnMissingStoreURL(t *testing.T) {
	is := is.New(t)

	_, err := Load(strings.NewReader("siteURL: https://catalog.example.com\n"))
	is.True(err != nil)
}

func TestLoadFailsOnBrokenYaml(t *testing.T) {
	is := is.New(t)

	_, err := Load(strings.NewReader("\tsiteURL: [broken"))
	is.True(err != nil)
}

const settingsYaml string = `
siteURL: https://catalog.example.com/
storeURL: https://store.example.com/
defaultImagePath: /opt/diwise/assets/logo.png
`
