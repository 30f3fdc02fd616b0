//go:build testing

package config

const isTesting = true

func testingConfig() Config {
	return Config{
		Env:  EnvTesting,
		Port: 3001,
	}
}
