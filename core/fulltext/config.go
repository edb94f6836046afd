package fulltext

// Config holds the search settings.
type Config struct {
	// SimilarityThreshold is the minimum similarity percentage (0-100) that
	// contributes to a score.
	SimilarityThreshold float64 `mapstructure:"similarity_threshold" default:"80"`
}

// Options returns the scorer options for the configuration.
func (c Config) Options() []Option {
	if c.SimilarityThreshold <= 0 {
		return nil
	}
	return []Option{WithThreshold(c.SimilarityThreshold)}
}
