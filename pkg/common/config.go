package common

import (
	"encoding/json"
	"fmt"
	"net"
	"os"

	"k8s.io/klog/v2"
)

// Config holds all the configuration information for the demo driver.
type Config struct {
	Generic GenericConfig `json:"generic"`
	World   WorldConfig   `json:"world"`
	Queries QueryConfig   `json:"queries"`
}

// GenericConfig captures generic configuration fields.
type GenericConfig struct {
	LogFile         string `json:"log_file"`
	MetricsEndpoint string `json:"metrics_endpoint"`
	ResultCacheTTL  int    `json:"result_cache_ttl"`
	ResultCacheTick int    `json:"result_cache_tick"`
}

// WorldConfig describes the demo tile board.
type WorldConfig struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	ObstacleRatio float64 `json:"obstacle_ratio"`
	Seed          int64   `json:"seed"`
}

// QueryConfig describes the randomized query workload.
type QueryConfig struct {
	Count           int     `json:"count"`
	HeuristicWeight float64 `json:"heuristic_weight"`
}

const (
	// MaxBoardEdge is the max width/height for the demo board.
	MaxBoardEdge = 4096
	// MaxQueryCount is the max number of randomized queries per run.
	MaxQueryCount = 1000000
	// MaxResultCacheTimeout is max timeout (ms) between result cache eviction runs.
	MaxResultCacheTimeout = 50000
	// MaxResultCacheTTL is max time-to-live (ms) for an entry in the result cache.
	MaxResultCacheTTL = 500000
)

// LoadConfig reads the configuration file and marshals it into an object.
func LoadConfig(filename string, createType func() interface{}) (interface{}, error) {
	tmp, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %s", err)
	}
	cfg := createType()
	err = json.Unmarshal(tmp, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file: %s", err)
	}
	return cfg, nil
}

// ParseConfig loads the configuration from a JSON file.
func ParseConfig(filename string) (Config, error) {
	tmp, err := LoadConfig(filename, func() interface{} {
		return &Config{}
	})
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config: %s", err)
	}
	result := tmp.(*Config)

	if result.World.Width <= 0 || result.World.Width > MaxBoardEdge ||
		result.World.Height <= 0 || result.World.Height > MaxBoardEdge {
		return *result, fmt.Errorf("invalid input value: board edge out of the provided limits")
	}
	if result.World.ObstacleRatio < 0.0 || result.World.ObstacleRatio >= 1.0 {
		return *result, fmt.Errorf("invalid input value: obstacle ratio needs to be in [0.0, 1.0)")
	}
	if result.Queries.Count <= 0 || result.Queries.Count > MaxQueryCount {
		return *result, fmt.Errorf("invalid input value: query count out of the provided limits")
	}
	if result.Queries.HeuristicWeight < 0.0 {
		return *result, fmt.Errorf("invalid input value: heuristic weight must not be negative")
	}
	if result.Generic.ResultCacheTTL < 0 || result.Generic.ResultCacheTTL > MaxResultCacheTTL ||
		result.Generic.ResultCacheTick < 0 || result.Generic.ResultCacheTick > MaxResultCacheTimeout {
		return *result, fmt.Errorf("invalid input value: result cache timings out of the provided limits")
	}
	if result.Generic.MetricsEndpoint != "" && !checkListenAddress(result.Generic.MetricsEndpoint) {
		return *result, fmt.Errorf("invalid metrics endpoint")
	}

	return *result, nil
}

// checkListenAddress validates if the input host:port address is fine.
func checkListenAddress(address string) bool {
	_, _, err := net.SplitHostPort(address)
	if err != nil {
		klog.Error(err)
		return false
	}
	return true
}
