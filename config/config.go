package config

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment override, e.g. EDUVERSE_MAIL_PASSWORD.
const EnvPrefix = "EDUVERSE"

// DBConfig Database config
type DBConfig struct {
	Type     string `yaml:"type" envconfig:"TYPE"` // postgres or sqlite
	Host     string `yaml:"host" envconfig:"HOST"`
	Port     int    `yaml:"port" envconfig:"PORT"`
	Name     string `yaml:"name" envconfig:"NAME"` // database name, or file name for sqlite
	User     string `yaml:"user" envconfig:"USER"`
	Passwd   string `yaml:"passwd" envconfig:"PASSWD"`
	SSLMode  string `yaml:"sslmode" envconfig:"SSLMODE"`
	MaxConn  int    `yaml:"max_conn" envconfig:"MAX_CONN"`
	IdleConn int    `yaml:"idle_conn" envconfig:"IDLE_CONN"`
	Debug    bool   `yaml:"debug" envconfig:"DEBUG"`
}

// SysConfig System config
type SysConfig struct {
	Appid    string `yaml:"appid" envconfig:"APPID"`
	Location string `yaml:"location" envconfig:"LOCATION"`
	Workdir  string `yaml:"workdir" envconfig:"WORKDIR"`
	Debug    bool   `yaml:"debug" envconfig:"DEBUG"`
}

// WebConfig Web server config
type WebConfig struct {
	Host            string   `yaml:"host" envconfig:"HOST"`
	Port            int      `yaml:"port" envconfig:"PORT"`
	StaticDir       string   `yaml:"static_dir" envconfig:"STATIC_DIR"`
	AllowOrigins    []string `yaml:"allow_origins" envconfig:"ALLOW_ORIGINS"`
	Metrics         bool     `yaml:"metrics" envconfig:"METRICS"`
	ShutdownTimeout int      `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"` // seconds
}

// LogConfig Log config
type LogConfig struct {
	Mode       string `yaml:"mode" envconfig:"MODE"` // development or production
	FileEnable bool   `yaml:"file_enable" envconfig:"FILE_ENABLE"`
	Filename   string `yaml:"filename" envconfig:"FILENAME"`
}

// MailConfig SMTP settings of the outbound mail transport
type MailConfig struct {
	Host     string `yaml:"host" envconfig:"HOST"`
	Port     int    `yaml:"port" envconfig:"PORT"`
	Username string `yaml:"username" envconfig:"USERNAME"`
	Password string `yaml:"password" envconfig:"PASSWORD"`
	From     string `yaml:"from" envconfig:"FROM"`
	SSL      bool   `yaml:"ssl" envconfig:"SSL"`
}

// ContactConfig destination of contact form submissions
type ContactConfig struct {
	Email string `yaml:"email" envconfig:"EMAIL"`
	Name  string `yaml:"name" envconfig:"NAME"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system" envconfig:"SYSTEM"`
	Web      WebConfig     `yaml:"web" envconfig:"WEB"`
	Database DBConfig      `yaml:"database" envconfig:"DB"`
	Logger   LogConfig     `yaml:"logger" envconfig:"LOGGER"`
	Mail     MailConfig    `yaml:"mail" envconfig:"MAIL"`
	Contact  ContactConfig `yaml:"contact" envconfig:"CONTACT"`
}

// GetLogDir returns the log directory under the working directory
func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

// GetDataDir returns the data directory under the working directory
func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) initDirs() error {
	for _, dir := range []string{c.GetLogDir(), c.GetDataDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create directory %s", dir)
		}
	}
	return nil
}

// DefaultAppConfig returns the built-in configuration
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "Eduverse",
			Location: "Asia/Kolkata",
			Workdir:  "/var/eduverse",
			Debug:    true,
		},
		Web: WebConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			AllowOrigins:    []string{"http://localhost:3000", "http://localhost:8080"},
			Metrics:         true,
			ShutdownTimeout: 10,
		},
		Database: DBConfig{
			Type:     "postgres",
			Host:     "127.0.0.1",
			Port:     5432,
			Name:     "eduverse",
			User:     "postgres",
			Passwd:   "postgres",
			SSLMode:  "disable",
			MaxConn:  50,
			IdleConn: 5,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/eduverse/logs/eduverse.log",
		},
		Mail: MailConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		Contact: ContactConfig{
			Email: "aadhyaeduverse@divyaam.net",
			Name:  "Aadhya Eduverse",
		},
	}
}

// LoadConfig reads the YAML file at cfile (if any), then the optional .env
// file, then applies EDUVERSE_* environment overrides on top.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfile)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", cfile)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "load .env")
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}

	cfg.Database.Type = strings.ToLower(strings.TrimSpace(cfg.Database.Type))
	if cfg.Logger.FileEnable || cfg.Database.Type == "sqlite" {
		if err := cfg.initDirs(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
