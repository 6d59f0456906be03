package myenergi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/icholy/digest"
)

const (
	// DirectorHost is the discovery host that assigns an API server per hub.
	DirectorHost = "director.myenergi.net"

	// asnHeader names the server the hub is currently assigned to.
	asnHeader = "x_myenergi-asn"

	// zappi devices are addressed with a Z prefix in request paths and
	// reported back under a U prefix in the response body.
	urlPrefix = "Z"
	dataKey   = "U"
)

// MyEnergiService handles interactions with the myenergi API.
type MyEnergiService struct {
	Client *http.Client
	Server string
}

// NewMyEnergiService creates a new MyEnergiService with pre-configured
// digest authentication. The hub serial number is the username and the
// generated API key is the password.
func NewMyEnergiService(rt http.RoundTripper, server, serial, apiKey string, timeout time.Duration) *MyEnergiService {
	return &MyEnergiService{
		Client: &http.Client{
			Transport: &digest.Transport{
				Username:  serial,
				Password:  apiKey,
				Transport: rt,
			},
			Timeout: timeout,
		},
		Server: server,
	}
}

// DayReadings fetches one day of readings for the given device. The second
// return value reports whether the response carried data for the device:
// transport and decode failures return an error, while non-2xx statuses,
// empty bodies and responses without the device key return (nil, false, nil).
func (s *MyEnergiService) DayReadings(device string, day time.Time) ([]DayReading, bool, error) {
	url := fmt.Sprintf("https://%s/cgi-jday-%s%s-%s", s.Server, urlPrefix, device, strfmt.Date(day))

	resp, err := s.Client.Get(url)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || len(body) == 0 {
		return nil, false, nil
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, fmt.Errorf("decoding response: %w", err)
	}

	raw, ok := payload[dataKey+device]
	if !ok {
		return nil, false, nil
	}

	var readings []DayReading
	if err := json.Unmarshal(raw, &readings); err != nil {
		return nil, false, fmt.Errorf("decoding readings: %w", err)
	}

	return readings, true, nil
}

// Status issues one authenticated status request against the given host and
// returns the raw body along with the response headers.
func (s *MyEnergiService) Status(host string) (json.RawMessage, http.Header, error) {
	resp, err := s.Client.Get(fmt.Sprintf("https://%s/cgi-jstatus-*", host))
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading response body: %w", err)
	}

	return body, resp.Header, nil
}

// Probe asks the director for a status and, when the response names an
// assigned server, repeats the request against that server. The returned
// payload is always from the last request made.
func (s *MyEnergiService) Probe() (json.RawMessage, error) {
	body, header, err := s.Status(DirectorHost)
	if err != nil {
		return nil, fmt.Errorf("querying director: %w", err)
	}

	if server := header.Get(asnHeader); server != "" {
		body, _, err = s.Status(server)
		if err != nil {
			return nil, fmt.Errorf("querying assigned server %s: %w", server, err)
		}
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding status response: %w", err)
	}

	return body, nil
}
