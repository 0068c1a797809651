package shared

const (
	UserID = "user_id"

	PlanFree = "Free"
	PlanPro  = "Pro"

	// DateLayout is the storage format for activity dates. An empty string
	// means the user has never recorded a session.
	DateLayout = "2006-01-02"
)
