package pagination

// Config holds pagination defaults for request handling.
type Config struct {
	// PerPage is the page size used when a request does not ask for one.
	PerPage int `mapstructure:"per_page" default:"15"`
	// MaxPerPage caps the page size a request may ask for. Zero disables the cap.
	MaxPerPage int `mapstructure:"max_per_page" default:"100"`
}

// Normalize resolves a requested page and page size against the configuration.
func (c Config) Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = c.PerPage
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if c.MaxPerPage > 0 && perPage > c.MaxPerPage {
		perPage = c.MaxPerPage
	}
	return page, perPage
}
