// Package config provides configuration management for support-kit.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file loaded first through godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Log: Logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Date: Timezone used when dates are converted (DATE_TIMEZONE)
//   - Pagination: Default and maximum page size (PAGINATION_PER_PAGE, PAGINATION_MAX_PER_PAGE)
//   - Search: Similarity threshold of the full-text scorer (SEARCH_SIMILARITY_THRESHOLD)
//   - Database: MySQL connection details for paging through tables (DATABASE_HOST, ...)
//
// Every key has a default declared in the `default` struct tag of its field.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Date.Timezone)
package config
