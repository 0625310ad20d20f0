// Command geocode performs a one-shot lookup against the Mapbox Geocoding API
// and prints the normalized result as JSON. Useful for spot-checking how a
// query or coordinate normalizes without running the server.
//
// Usage:
//
//	MAPBOX_TOKEN=... go run ./cmd/geocode -query "55 Foote St, New Haven" -country us
//	MAPBOX_TOKEN=... go run ./cmd/geocode -lat 41.31815 -lng -72.93277
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/addressforge/address-normalizer/internal/adapter/mapbox"
	"github.com/addressforge/address-normalizer/internal/domain"
	"github.com/addressforge/address-normalizer/internal/geodata"
	"github.com/addressforge/address-normalizer/internal/observability"
)

func main() {
	query := flag.String("query", "", "free-text search query")
	lat := flag.Float64("lat", 0, "latitude for reverse lookup")
	lng := flag.Float64("lng", 0, "longitude for reverse lookup")
	country := flag.String("country", "", "restrict search to an ISO 3166-1 alpha-2 country")
	filter := flag.String("filter", "", "comma-separated place kinds to search")
	timeout := flag.Duration("timeout", 10*time.Second, "provider request timeout")
	flag.Parse()

	reverse := isFlagSet("lat") && isFlagSet("lng")
	if *query == "" && !reverse {
		fmt.Fprintln(os.Stderr, "either -query or both -lat and -lng are required")
		flag.Usage()
		os.Exit(1)
	}

	token := os.Getenv("MAPBOX_TOKEN")
	if token == "" {
		fmt.Fprintln(os.Stderr, "MAPBOX_TOKEN is required")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()
	client := mapbox.NewClient(token, os.Getenv("MAPBOX_BASE_URL"), *timeout, geodata.Load(), metrics, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var result any
	var err error
	if reverse {
		result, err = client.ReverseGeocode(ctx, *lat, *lng)
	} else {
		result, err = client.SearchPlaces(ctx, *query, domain.SearchOptions{
			Filter:  *filter,
			Country: *country,
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "lookup failed:", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, "encode result:", err)
		os.Exit(1)
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
