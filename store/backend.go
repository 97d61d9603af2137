package store

// Concern names double as document names: the file backend keeps one
// human-editable JSON file per concern, the bolt backend one bucket.
const (
	ConcernSettings = "settings"
	ConcernProfiles = "profiles"
	ConcernRecent   = "recent"
	ConcernHistory  = "history"
)

func allConcerns() []string {
	return []string{ConcernSettings, ConcernProfiles, ConcernRecent, ConcernHistory}
}

// Backend persists one opaque document per concern. Every store writes its
// whole document synchronously on each mutation; there is no incremental
// update path.
type Backend interface {
	Load(concern string) ([]byte, error)
	Save(concern string, data []byte) error
	Close() error
}
