package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          string `mapstructure:"port"`
	SessionSecret string `mapstructure:"session_secret"`
}

// StorageConfig selects and configures the record-store backend.
// Backend is either "file" (single JSON document) or "mongo".
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`
	FilePath string `mapstructure:"file_path"` // used when Backend == "file"
	MongoURI string `mapstructure:"mongo_uri"` // used when Backend == "mongo"
	MongoDB  string `mapstructure:"mongo_db"`
}

// AdminConfig holds the back-office credentials and notification address.
// Credentials are plaintext by design (see spec non-goals); do not reuse them
// anywhere else.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Email    string `mapstructure:"email"`
}

// MailConfig holds SMTP settings. Mail is optional: when Username or
// Password is empty the mailer is disabled and sends become no-ops.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender"`
}

// UploadConfig selects and configures the upload-storage collaborator.
// Backend is either "local" (disk under Folder) or "b2".
type UploadConfig struct {
	Backend     string `mapstructure:"backend"`
	Folder      string `mapstructure:"folder"`
	B2AccountID string `mapstructure:"b2_account_id"`
	B2AppKey    string `mapstructure:"b2_app_key"`
	B2Bucket    string `mapstructure:"b2_bucket"`
}

// Config is the application's full configuration. It is loaded once in main
// and passed explicitly into the components that need it.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Mail    MailConfig    `mapstructure:"mail"`
	Upload  UploadConfig  `mapstructure:"upload"`
}

// Load reads configuration from config.yaml (optional) and environment
// variables (CSDWEB_ prefix, e.g. CSDWEB_STORAGE_BACKEND). Environment
// variables override file values; defaults cover local development.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("csdweb")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.session_secret", "dev-session-secret-change")
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.file_path", "database.json")
	viper.SetDefault("storage.mongo_uri", "mongodb://localhost:27017")
	viper.SetDefault("storage.mongo_db", "csdweb")
	viper.SetDefault("admin.username", "admin")
	viper.SetDefault("admin.password", "admin123")
	viper.SetDefault("admin.email", "")
	viper.SetDefault("mail.host", "smtp.gmail.com")
	viper.SetDefault("mail.port", 587)
	viper.SetDefault("mail.username", "")
	viper.SetDefault("mail.password", "")
	viper.SetDefault("mail.sender", "")
	viper.SetDefault("upload.backend", "local")
	viper.SetDefault("upload.folder", "static/uploads")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] No config file found, using defaults and environment variables.")
		} else {
			log.Printf("ERROR: [Config] Failed to read config file: %v", err)
			return nil, err
		}
	} else {
		log.Printf("INFO: [Config] Loaded configuration from %s", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("ERROR: [Config] Failed to unmarshal configuration: %v", err)
		return nil, err
	}

	if cfg.Mail.Sender == "" {
		cfg.Mail.Sender = cfg.Mail.Username
	}

	log.Printf("INFO: [Config] Storage backend: %s, upload backend: %s, mail configured: %t",
		cfg.Storage.Backend, cfg.Upload.Backend, cfg.Mail.Username != "" && cfg.Mail.Password != "")
	return &cfg, nil
}
