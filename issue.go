package osm2walk

// Issue is a non-fatal record of a data anomaly met during graph construction
type Issue struct {
	Code      string
	Message   string
	FeatureID int64
}

// IssueSink collects data anomalies as a side channel. Reporting never fails
// and never interrupts the build.
type IssueSink interface {
	Report(code string, message string, featureID int64)
}

// IssueStore is an in-memory IssueSink
type IssueStore struct {
	issues []Issue
}

func NewIssueStore() *IssueStore {
	return &IssueStore{
		issues: make([]Issue, 0),
	}
}

func (store *IssueStore) Report(code string, message string, featureID int64) {
	store.issues = append(store.issues, Issue{
		Code:      code,
		Message:   message,
		FeatureID: featureID,
	})
}

// Issues returns every reported issue in report order
func (store *IssueStore) Issues() []Issue {
	return store.issues
}
