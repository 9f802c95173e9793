package model

import "fmt"

// Config is an ON/OFF switch read from the command line.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"ON": On,
	"On": On,
	"on": On,
	"1":  On,

	"OFF": Off,
	"Off": Off,
	"off": Off,
	"0":   Off,
}

func NewConfig(s string) Config {
	return configName[s]
}

func ParseConfig(s string) (Config, error) {
	c, ok := configName[s]
	if !ok {
		return Off, fmt.Errorf("invalid switch %q, want ON or OFF", s)
	}
	return c, nil
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}

// Set implements flag.Value.
func (c *Config) Set(s string) error {
	v, err := ParseConfig(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
