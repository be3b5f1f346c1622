package eodhd

import (
	"fmt"
	"math"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "code": "IVV.US",
	    "timestamp": 1693425600,
	    "gmtoffset": 0,
	    "open": 449.52,
	    "high": 451.12,
	    "low": 448.4,
	    "close": 450.25,
	    "volume": 3342555,
	    "previousClose": 448.9,
	    "change": 1.35,
	    "change_p": 0.3007
	}
*/

// Latest returns the most recent intraday close for a ticker.
//
// The real-time endpoint payload shifts shape depending on subscription
// level, so the value is extracted by path from the raw JSON rather than a
// typed struct.
func Latest(apiKey, ticker string) (float64, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/real-time/%s?fmt=json&api_token=%s", ticker, apiKey)

	var jobj any
	if err := jwget(newDailyCachingClient(), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", ticker, err)
	}

	path := "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", ticker, path, "not a float", jval)
	}
	return val, nil
}
