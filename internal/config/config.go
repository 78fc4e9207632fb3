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
	Server  Server  `koanf:"server"`
	Storage Storage `koanf:"storage"`
	Posting Posting `koanf:"posting"`
}

type Server struct {
	Port int `koanf:"port"`
}

// Storage selects and configures the table store backend. Backend is one of
// "file", "memory", "sqlite", "postgres" or "sheets".
type Storage struct {
	Backend  string   `koanf:"backend"`
	Dir      string   `koanf:"dir"`
	SQLite   SQLite   `koanf:"sqlite"`
	Postgres Postgres `koanf:"postgres"`
	Sheets   Sheets   `koanf:"sheets"`
}

type SQLite struct {
	Path string `koanf:"path"`
}

type Postgres struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
	Name string `koanf:"name"`
}

// Sheets configures the Google Sheets backend. Either service account
// credentials (file or inline JSON) or an OAuth client with a stored token
// must be provided.
type Sheets struct {
	SpreadsheetId   string `koanf:"spreadsheetid"`
	CredentialsFile string `koanf:"credentialsfile"`
	CredentialsJSON string `koanf:"credentialsjson"`
	ClientId        string `koanf:"clientid"`
	ClientSecret    string `koanf:"clientsecret"`
	TokenFile       string `koanf:"tokenfile"`
}

// Posting controls automatic posting of due subscription charges.
type Posting struct {
	Auto     bool   `koanf:"auto"`
	Schedule string `koanf:"schedule"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Port: 8181,
		},
		Storage: Storage{
			Backend: "file",
			Dir:     "./data",
			SQLite: SQLite{
				Path: "./data/fintrack.db",
			},
			Postgres: Postgres{
				Host: "localhost",
				Port: 5432,
				User: "fintrack",
				Pass: "",
				Name: "fintrack",
			},
		},
		Posting: Posting{
			Auto:     false,
			Schedule: "@daily",
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
		Prefix: "FINTRACK_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "FINTRACK_")), "_", ".")
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
