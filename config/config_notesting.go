//go:build !testing

package config

const isTesting = false

func testingConfig() Config {
	panic("not reachable outside testing builds")
}
