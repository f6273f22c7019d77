package testdata

import (
	"embed"
	"log"
	"path"
)

//go:embed scenarios
var Scenarios embed.FS

// GetScenario returns the raw yaml of a scenario under testdata/scenarios.
func GetScenario(name string) []byte {
	ret, err := Scenarios.ReadFile(path.Join("scenarios", name))
	if err != nil {
		log.Fatalf("could not load test file %v: %v", name, err)
	}
	return ret
}
