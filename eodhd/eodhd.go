// Package eodhd fetches daily prices and dividend events from eodhd.com,
// producing records in the standard price feed shape. It is the Go
// counterpart of the dataset generator used to build stockData.csv.
package eodhd

import (
	"flag"
	"os"
)

const apiKeyEnv = "EODHD_API_KEY"

var apiKeyFlag = flag.String("eodhd-api-key", "", "EODHD API key to use for fetching prices from EODHD.com.\n If missing it will read for the environment variable \""+apiKeyEnv+"\". You can get one at https://eodhd.com/")

// APIKey returns the EODHD API key from the flag or the environment.
func APIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(apiKeyEnv)
	}
	return *apiKeyFlag
}
