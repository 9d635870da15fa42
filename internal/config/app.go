package config

type AppConfig struct {
	Name string `yaml:"service-name"`
}

func (s *AppConfig) ServiceName() string {
	return s.Name
}
