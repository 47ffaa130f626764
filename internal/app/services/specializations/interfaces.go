package specializations

import "konsulin-admin-console/internal/pkg/dto/responses"

type ListStateName string

const (
	ListStateLoading         ListStateName = "loading"
	ListStateReady           ListStateName = "ready"
	ListStateUnauthenticated ListStateName = "unauthenticated"
	ListStateError           ListStateName = "error"
)

func (s ListStateName) String() string {
	return string(s)
}

// recordIDs collects record ids for log fields.
func recordIDs(records []responses.Specialization) []int64 {
	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}
