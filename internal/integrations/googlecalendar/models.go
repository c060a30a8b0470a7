package googlecalendar

// DTOs da Calendar API v3, limitados aos campos que o estúdio usa.

type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type ReminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

type Reminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []ReminderOverride `json:"overrides"`
}

type Event struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	Reminders   Reminders `json:"reminders"`
}

type freeBusyRequest struct {
	TimeMin  string             `json:"timeMin"`
	TimeMax  string             `json:"timeMax"`
	TimeZone string             `json:"timeZone"`
	Items    []freeBusyCalendar `json:"items"`
}

type freeBusyCalendar struct {
	ID string `json:"id"`
}

type busyBlock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type freeBusyResponse struct {
	Calendars map[string]struct {
		Busy []busyBlock `json:"busy"`
	} `json:"calendars"`
}
