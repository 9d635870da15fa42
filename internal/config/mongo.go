package config

type MongoConfig struct {
	ServerURI   string `yaml:"uri"`
	Db          string `yaml:"database"`
	Coll        string `yaml:"collection"`
	TimeoutSecs int64  `yaml:"timeout-seconds"`
}

func (m *MongoConfig) URI() string {
	return m.ServerURI
}

func (m *MongoConfig) Database() string {
	return m.Db
}

func (m *MongoConfig) Collection() string {
	return m.Coll
}

func (m *MongoConfig) TimeoutSeconds() int64 {
	return m.TimeoutSecs
}
