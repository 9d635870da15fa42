package config

type ServerConfig struct {
	HostPort    string `yaml:"port"`
	Environment string `yaml:"env"`
}

func (s *ServerConfig) Port() string {
	return s.HostPort
}

func (s *ServerConfig) Env() string {
	return s.Environment
}
