package config

// Restylefile represents the structure of the restyle.yaml configuration file.
type Restylefile struct {
	Version string       `yaml:"version"`
	Root    string       `yaml:"root"`
	Src     string       `yaml:"src"`
	Dest    string       `yaml:"dest"`
	Include []string     `yaml:"include"`
	Plugins []string     `yaml:"plugins"`
	Serve   ServeSection `yaml:"serve"`
	Watch   WatchSection `yaml:"watch"`
}

// ServeSection configures the HTTP trigger.
type ServeSection struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// WatchSection configures watch mode. Debounce is a Go duration string.
type WatchSection struct {
	Debounce string `yaml:"debounce"`
}
