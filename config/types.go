package config

// Config is the complete run configuration for a reconstruction job. The
// geometric contract (wall height, cutout sizes, association tolerances)
// is fixed by the reconstruction core; this configures inputs, outputs and
// the serving surface around it.
type Config struct {
	Input     Input   `yaml:"input"`
	Output    Output  `yaml:"output"`
	Section   Section `yaml:"section"`
	Server    Server  `yaml:"server"`
	Highlight string  `yaml:"highlight,omitempty"` // initially highlighted room id
}

type Input struct {
	Plan struct {
		Path string `yaml:"path"`
	} `yaml:"plan"`
}

type Output struct {
	GraphJSON string `yaml:"graph_json,omitempty"`
	STL       string `yaml:"stl,omitempty"`
	ThreeMF   string `yaml:"threemf,omitempty"`
	Section   string `yaml:"section,omitempty"` // PNG path
}

type Section struct {
	Height float64 `yaml:"height"` // world-unit cut height
	XSize  int     `yaml:"x_size"`
	YSize  int     `yaml:"y_size"`
	Margin float64 `yaml:"margin"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	c := &Config{}
	c.Section = Section{Height: 1.5, XSize: 1024, YSize: 1024, Margin: 40}
	c.Server = Server{Addr: ":8080"}
	return c
}
