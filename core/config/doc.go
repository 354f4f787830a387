// Package config provides configuration management for the ITAC data API.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, CORS origins, preview limit)
//   - Database: ITAC database location (SQLite file by default)
//   - Naics / Arc: hierarchy document paths
//   - Storage: S3/MinIO credentials for the dataset sync command
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
