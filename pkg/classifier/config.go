package classifier

import "time"

type Config struct {
	Enable  bool          `mapstructure:"enable"`
	URL     string        `mapstructure:"url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}
