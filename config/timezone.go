package config

import (
	"log"
	"os"
	"time"
)

// AppLocation resolves the zone used for day boundaries when a request
// does not ask for one. APP_TIMEZONE takes an IANA name ("Europe/Berlin");
// unset falls back to the host zone. The boundary policy is always passed
// explicitly into the summary service, never read from the ambient clock
// at aggregation time.
func AppLocation() *time.Location {
	name := os.Getenv("APP_TIMEZONE")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid APP_TIMEZONE %q, falling back to host zone: %v", name, err)
		return time.Local
	}
	return loc
}
