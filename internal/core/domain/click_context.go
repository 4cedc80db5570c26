package domain

// ClickContext describes the visitor behind a click. The HTTP layer builds it
// from request headers. SessionUserID is empty for anonymous visitors.
type ClickContext struct {
	IP            string
	UserAgent     string
	Referrer      string
	SessionUserID string
}
