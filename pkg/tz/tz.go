package tz

import (
	"log"
	"os"
	"time"
)

// Campus is the location used to render event times in outbound messages
// and to bound the "today" feed window. Override with CAMPUS_TZ (an IANA
// name such as "America/Toronto"); defaults to UTC.
var Campus = time.UTC

func init() {
	name := os.Getenv("CAMPUS_TZ")
	if name == "" {
		return
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ tz: CAMPUS_TZ %q invalide, UTC conservé: %v", name, err)
		return
	}
	Campus = loc
}
