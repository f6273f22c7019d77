/*
Package settings controls reading configuration from environment and assigning defaults
*/
package settings

import (
	"fmt"
	"log" // cannot use zerolog as log options not initialised
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/bloom"
)

// environment variables are read as US__FILTER__EXPECTED_ITEMS or US.FILTER.EXPECTED_ITEMS
const envPrefix = "US"

var Settings *USSettings
var Filter *USFilter
var Restapi *USRestapi

// Logger is the process wide structured logger.
var Logger zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

type USFilter struct {
	// number of unique items the filter is sized for
	ExpectedItems int `koanf:"expected_items"`
	// acceptable chance of reporting an unseen item as a duplicate
	FPProbability float64 `koanf:"fp_probability"`
	// position hash, xxhash or murmur3
	Hash string `koanf:"hash"`
}

type USRestapi struct {
	// gjson path of the item to dedupe within posted json
	ItemPath string `koanf:"item_path"`
	// sjson path the verdict is written to when echoing checked json
	VerdictPath string `koanf:"verdict_path"`
	// Max time to read a request
	ReadTimeout time.Duration `koanf:"read_timeout"`
}

type USSettings struct {
	// restapi server will listen for connections from this address
	ListenAddr string `koanf:"listen_addr"`
	// for custom log files, the folder to place these file in
	LogPath string `koanf:"log_path"`
	// zerolog level name
	LogLevel string    `koanf:"log_level"`
	Filter   USFilter  `koanf:"filter"`
	Restapi  USRestapi `koanf:"restapi"`
}

var defaults USSettings = USSettings{
	ListenAddr: ":8112",
	LogPath:    "/tmp/logs/uniquestream/",
	LogLevel:   "info",
	Filter: USFilter{
		ExpectedItems: 1_000_000,
		FPProbability: 0.001,
		Hash:          "xxhash",
	},
	Restapi: USRestapi{
		ItemPath:    "text",
		VerdictPath: "uniquestream.verdict",
		ReadTimeout: 30 * time.Second,
	},
}

// Defaults returns a copy of the built in settings.
func Defaults() USSettings {
	return defaults
}

func envKey(prefix string) func(string) string {
	return func(s string) string {
		s = strings.TrimPrefix(s, prefix)
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}
}

// ParseSettings reads defaults then overlays any environment variables.
func ParseSettings() (*USSettings, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	for _, prefix := range []string{envPrefix + "__", envPrefix + "."} {
		if err := k.Load(env.Provider(prefix, ".", envKey(prefix)), nil); err != nil {
			return nil, fmt.Errorf("load environment %s: %w", prefix, err)
		}
	}
	var out USSettings
	err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			Result:           &out,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks the filter can be built from these settings.
func (s *USSettings) Validate() error {
	if _, err := bloom.EstimateParameters(s.Filter.ExpectedItems, s.Filter.FPProbability); err != nil {
		return fmt.Errorf("filter settings: %w", err)
	}
	if _, ok := bloom.HasherByName(s.Filter.Hash); !ok {
		return fmt.Errorf("filter settings: unknown hash %q", s.Filter.Hash)
	}
	if s.Restapi.ItemPath == "" || s.Restapi.VerdictPath == "" {
		return fmt.Errorf("restapi settings: item_path and verdict_path must be set")
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func setupLoggers(settings *USSettings) {
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Printf("Invalid log level %s, using info", settings.LogLevel)
		level = zerolog.InfoLevel
	}
	Logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	openFileLogs(settings.LogPath)
}

func ResetSettings() {
	parsed, err := ParseSettings()
	if err != nil {
		log.Fatalf("Invalid settings: %s", err.Error())
	}
	Settings = parsed
	setupLoggers(Settings)
	Filter = &Settings.Filter
	Restapi = &Settings.Restapi
}

func init() {
	ResetSettings()
}
