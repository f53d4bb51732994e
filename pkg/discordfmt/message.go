package discordfmt

import (
	"fmt"
	"strings"
	"time"

	"clubboard/internal/domain/entities"
	"clubboard/pkg/tz"
)

const fallbackTitle = "New Event"

// BuildEventMessage renders the plain-text summary posted to a club's
// Discord channel: bolded title, then description, pin-prefixed location
// and calendar-prefixed start time. Each optional line is omitted
// independently when its source field is empty.
func BuildEventMessage(event *entities.Event) string {
	title := strings.TrimSpace(event.Title)
	if title == "" {
		title = fallbackTitle
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**", title))
	if event.Description != "" {
		b.WriteString("\n" + event.Description)
	}
	if event.Location != "" {
		b.WriteString("\n📍 " + event.Location)
	}
	if !event.StartTime.IsZero() {
		b.WriteString("\n📅 " + FormatEventTime(event.StartTime))
	}
	return b.String()
}

// FormatEventTime renders an event instant in the campus timezone.
func FormatEventTime(t time.Time) string {
	return t.In(tz.Campus).Format("Mon, Jan 2 2006 at 3:04 PM")
}
