package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/kbukum/streamkit/errors"
)

// Config holds PostgreSQL connection settings.
type Config struct {
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	SSLMode  string `yaml:"sslmode" mapstructure:"sslmode"`
}

// ApplyDefaults applies default values to connection settings.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
}

// DSN returns the connection string for the configuration.
func (c *Config) DSN() string {
	c.ApplyDefaults()
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Connect opens and pings a database connection for the configuration.
// The same Config can be used to create any number of connections.
func Connect(cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		return nil, errors.DatabaseError(err).WithDetail("host", cfg.Host).WithDetail("dbname", cfg.DBName)
	}
	return db, nil
}

// MustConnect is like Connect but panics on error.
func MustConnect(cfg Config) *sqlx.DB {
	db, err := Connect(cfg)
	if err != nil {
		panic(err)
	}
	return db
}
