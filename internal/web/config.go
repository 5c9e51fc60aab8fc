package web

// Config holds the web server configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	URL            string
	MaxConnections int
}

// DataConfig holds pipeline data sources the dashboard needs at runtime.
type DataConfig struct {
	CatalogDir    string
	TermGroupsCSV string
	Threshold     float64
}
