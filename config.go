package main

type Config struct {
	HTTPPort              string   `yaml:"httpPort"`
	PrimaryEndpoint       string   `yaml:"primaryEndpoint"`
	FallbackEndpoint      string   `yaml:"fallbackEndpoint"`
	CacheTTLMinutes       int      `yaml:"cacheTTLMinutes"`
	RequestTimeoutSeconds int      `yaml:"requestTimeoutSeconds"`
	Retries               int      `yaml:"retries"`
	WarmBases             []string `yaml:"warmBases"`
}
