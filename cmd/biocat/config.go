package main

import (
	"flag"

	"github.com/spf13/viper"

	"github.com/PrakyathPNayak/biocat/db"
)

// Config shared by all subcommands: viper reads config.yaml, flags override.
type cmdConfig struct {
	// Flags.
	config *string // configure file name.
	path   *string // configure file directory.

	// Database connection.
	dbcfg db.Config

	// Fetch defaults.
	limit     int // max rows per fetch/search.
	minLength int // min sequence length for retrieval.
}

func (cmd *cmdConfig) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.config = fs.String("c", "config", "configure file name")
	cmd.path = fs.String("p", ".", "configure file directory")
	return fs
}

// ParseConfig reads the configure file and registers loggers.
func (cmd *cmdConfig) ParseConfig() {
	viper.SetConfigName(*cmd.config)
	viper.AddConfigPath(*cmd.path)
	if err := viper.ReadInConfig(); err != nil {
		WARN.Printf("no configure file: %v", err)
	}

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 3306)
	viper.SetDefault("db.user", "root")
	viper.SetDefault("db.database", "biocat")
	viper.SetDefault("fetch.limit", 50)
	viper.SetDefault("fetch.minlength", 10)

	cmd.dbcfg.Host = viper.GetString("db.host")
	cmd.dbcfg.Port = viper.GetInt("db.port")
	cmd.dbcfg.User = viper.GetString("db.user")
	cmd.dbcfg.Password = viper.GetString("db.password")
	cmd.dbcfg.Database = viper.GetString("db.database")
	cmd.limit = viper.GetInt("fetch.limit")
	cmd.minLength = viper.GetInt("fetch.minlength")

	registerLogger()
}

// connect opens the handle; the caller is responsible for closing it.
func (cmd *cmdConfig) connect() *db.Handle {
	h, err := db.Open(cmd.dbcfg)
	if err != nil {
		ERROR.Fatalf("cannot connect to %s: %v", cmd.dbcfg.Database, err)
	}
	return h
}
