package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env              string
	Debug            bool
	TestMode         bool
	AppName          string
	Build            string
	SecretKey        string
	DefaultFromEmail string
	AdminEmail       string

	Server struct {
		Host               string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	Database struct {
		Path string
	}

	Gemini struct {
		APIKey string
		Model  string
	}

	SendgridAPIKey string
	RollbarToken   string
}

// NewConfig loads the app configuration from the environment,
// with an optional `config/.env.<env>` file loaded first.
func NewConfig() *Config {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "EduSentry")
	v.SetDefault("build", "dev")
	v.SetDefault("secretKey", "x2m)d#7s$q&vwby85_azj3(h!u+4cgne9r%0kfpl1to6i@yw")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("adminEmail", "admin@faculty.com")
	v.SetDefault("serverHost", "0.0.0.0:8000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("databasePath", "edusentry.db")
	v.SetDefault("geminiApiKey", "")
	v.SetDefault("geminiModel", "gemini-3-flash-preview")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:              env,
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		AppName:          v.GetString("appName"),
		Build:            v.GetString("build"),
		SecretKey:        v.GetString("secretKey"),
		DefaultFromEmail: v.GetString("defaultFromEmail"),
		AdminEmail:       v.GetString("adminEmail"),
		SendgridAPIKey:   v.GetString("sendgridApiKey"),
		RollbarToken:     v.GetString("rollbarToken"),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
	conf.Database.Path = v.GetString("databasePath")
	conf.Gemini.APIKey = v.GetString("geminiApiKey")
	conf.Gemini.Model = v.GetString("geminiModel")
	return conf
}

// NewTestConfig returns a Config suitable for unit tests: in-memory database,
// no external credentials.
func NewTestConfig() *Config {
	conf := NewConfig()
	conf.Env = "TEST"
	conf.TestMode = true
	conf.Database.Path = ":memory:"
	conf.Gemini.APIKey = ""
	conf.SendgridAPIKey = ""
	conf.RollbarToken = ""
	return conf
}
