package model

// Exercise represents a single logged exercise entry.
//
// The owning user is recorded by username, not by user ID. The username is
// copied from the user record at creation time so log queries can filter on a
// single indexed column without a join. The trade-off: if a user could ever be
// renamed, old entries would keep the stale username. Users are immutable here,
// so the gap cannot open, but it is a property of the data model worth knowing.
type Exercise struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Description string   `json:"description"`
	Duration    Duration `json:"duration"`
	Date        Date     `json:"date"`
}

// LogEntry is the response shape for a newly logged exercise: the user's
// identity fields merged with the exercise fields, date pre-rendered as a
// human-readable day string. ID and Username always come from the user record.
type LogEntry struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Description string   `json:"description"`
	Duration    Duration `json:"duration"`
	Date        string   `json:"date"`
}

// LogLine is one entry inside a LogSummary.
type LogLine struct {
	Description string   `json:"description"`
	Duration    Duration `json:"duration"`
	Date        string   `json:"date"`
}

// LogSummary is the response shape for a log query. Count is the number of
// entries after date filtering and limiting, i.e. always len(Log).
type LogSummary struct {
	Username string    `json:"username"`
	Count    int       `json:"count"`
	Log      []LogLine `json:"log"`
}
