package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	myenergi "github.com/mgazza/myenergi-totals"
)

// Config contains configuration for the yearly fetch.
type Config struct {
	Serial         string
	APIKey         string
	Device         string
	Server         string
	CacheDirectory string
	Range          myenergi.DateRange
}

// envOrString returns the environment variable value if set, otherwise returns the default value.
func envOrString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func parseFlags() *Config {
	serial := flag.String("serial", envOrString("MYENERGI_SERIAL", ""), "Hub serial number (digest username)")
	apiKey := flag.String("apikey", envOrString("MYENERGI_API_KEY", ""), "myenergi API key")
	device := flag.String("device", envOrString("MYENERGI_DEVICE", ""), "Zappi serial number to aggregate")
	server := flag.String("server", envOrString("MYENERGI_SERVER", "s18.myenergi.net"), "Assigned API server")
	year := flag.Int("year", 2025, "Calendar year to aggregate")
	start := flag.String("start", "", "Start date (optional, YYYY-MM-DD, overrides -year)")
	end := flag.String("end", "", "End date (optional, YYYY-MM-DD, overrides -year)")
	cacheDir := flag.String("cache", envOrString("CACHE_DIR", "disable"), "Directory for HTTP cache ('disable' to disable, empty for temporary directory)")
	flag.Parse()

	if *serial == "" || *apiKey == "" || *device == "" {
		log.Fatalf("Required flags missing. Usage: %s -serial=... -apikey=... -device=...", os.Args[0])
	}

	r := myenergi.Year(*year)
	if *start != "" {
		parsed, err := time.Parse("2006-01-02", *start)
		if err != nil {
			log.Fatalf("Invalid start date: %v", err)
		}
		r.Start = parsed
	}
	if *end != "" {
		parsed, err := time.Parse("2006-01-02", *end)
		if err != nil {
			log.Fatalf("Invalid end date: %v", err)
		}
		r.End = parsed
	}

	return &Config{
		Serial:         *serial,
		APIKey:         *apiKey,
		Device:         *device,
		Server:         *server,
		CacheDirectory: *cacheDir,
		Range:          r,
	}
}

func main() {
	config := parseFlags()

	rt := http.DefaultTransport

	if config.CacheDirectory != "disable" {
		cacheDir := config.CacheDirectory
		if cacheDir == "" {
			cacheDir = os.TempDir()
		}
		if err := os.MkdirAll(cacheDir, 0755); err != nil {
			log.Fatalf("failed to create cache dir: %v", err)
		}

		rt = &myenergi.CachingRoundTripper{Dir: path.Clean(cacheDir)}

		log.Printf("HTTP caching enabled in directory: %s", cacheDir)
	} else {
		log.Println("HTTP caching disabled")
	}

	service := myenergi.NewMyEnergiService(rt, config.Server, config.Serial, config.APIKey, 30*time.Second)

	aggregator := &myenergi.Aggregator{
		Service: service,
		Device:  config.Device,
		Pause:   myenergi.DefaultPause,
	}

	log.Printf("Fetching %s - %s from %s",
		config.Range.Start.Format("2006-01-02"),
		config.Range.End.Format("2006-01-02"),
		config.Server)

	report := aggregator.Run(config.Range)

	fmt.Println()
	fmt.Print(report)
}
