package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Auth     Auth     `koanf:"auth"`
	Rates    Rates    `koanf:"rates"`
	Storage  Storage  `koanf:"storage"`
	Database Database `koanf:"db"`
}

type Auth struct {
	// Secret signs session tokens. Must be overridden outside local development.
	Secret   string `koanf:"secret"`
	TokenTTL int    `koanf:"tokenttl"` // hours
}

type Rates struct {
	PrimaryURL  string `koanf:"primaryurl"`
	FallbackURL string `koanf:"fallbackurl"`
}

type Storage struct {
	// Dir is the root directory for stored receipt files.
	Dir string `koanf:"dir"`
}

type Database struct {
	// Path is the SQLite database file. Its directory is created on startup.
	Path string `koanf:"path"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Auth: Auth{
			Secret:   "domakasa-dev-secret",
			TokenTTL: 24,
		},
		Rates: Rates{
			PrimaryURL:  "https://www.bnb.bg/Statistics/StExternalSector/StExchangeRates/StERForeignCurrencies/index.htm?download=xml&search=&lang=BG",
			FallbackURL: "https://api.exchangerate-api.com/v4/latest/EUR",
		},
		Storage: Storage{
			Dir: "storage/receipts",
		},
		Database: Database{
			Path: "data/domakasa.db",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "DOMAKASA_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "DOMAKASA_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
