package specializations

import (
	"context"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ListState owns the specialization collection of one management screen and
// the filtered view derived from it. The collection only changes through
// FetchAll; nothing patches it locally.
type ListState struct {
	mu         sync.RWMutex
	state      ListStateName
	records    []responses.Specialization
	query      string
	filtered   []responses.Specialization
	generation uint64

	Client contracts.SpecializationAPIClient
	Tokens contracts.TokenProvider
	Log    *zap.Logger
}

func NewListState(client contracts.SpecializationAPIClient, tokens contracts.TokenProvider, logger *zap.Logger) *ListState {
	return &ListState{
		state:    ListStateLoading,
		records:  []responses.Specialization{},
		filtered: []responses.Specialization{},
		Client:   client,
		Tokens:   tokens,
		Log:      logger,
	}
}

// FetchAll replaces the collection with the backend's. The returned notice is
// nil when there is nothing to tell the admin.
func (s *ListState) FetchAll(ctx context.Context) *responses.Notice {
	requestID := utils.RequestIDFromContext(ctx)

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.state = ListStateLoading
	s.mu.Unlock()

	s.Log.Info("ListState.FetchAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)

	if _, ok := s.Tokens.GetToken(ctx); !ok {
		s.settle(generation, ListStateUnauthenticated, nil)
		notice := responses.Notice{
			Title:       constvars.NoticeTitleAuthenticationRequired,
			Description: constvars.ErrClientLoginToViewSpecializations,
			Variant:     constvars.NoticeVariantDefault,
		}
		return &notice
	}

	records, err := s.Client.FindAll(ctx)
	if err != nil {
		kind := exceptions.KindOf(err)
		switch kind {
		case exceptions.KindUnauthorized, exceptions.KindNoToken:
			s.Log.Warn("ListState.FetchAll backend refused the token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorKindKey, string(kind)),
			)
			s.settle(generation, ListStateUnauthenticated, nil)
			return nil
		default:
			s.Log.Error("ListState.FetchAll error calling Client.FindAll",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorKindKey, string(kind)),
				zap.Error(err),
			)
			if !s.settle(generation, ListStateError, nil) {
				return nil
			}
			notice := responses.NewErrorNotice(constvars.NoticeTitleError, fetchErrorMessage(err))
			return &notice
		}
	}

	records = uniqueByID(records)
	if !s.settle(generation, ListStateReady, records) {
		s.Log.Info("ListState.FetchAll superseded by a newer fetch, result discarded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil
	}

	s.Log.Info("ListState.FetchAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(records)),
		zap.Int64s(constvars.LoggingSpecializationIDKey, recordIDs(records)),
	)
	return nil
}

// ApplyFilter sets the query and returns the matching records. The filter is
// recomputed on every FetchAll as well, so it never runs on a stale collection.
func (s *ListState) ApplyFilter(query string) []responses.Specialization {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	s.filtered = filterRecords(s.records, query)
	return cloneRecords(s.filtered)
}

func (s *ListState) Snapshot() responses.SpecializationListSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return responses.SpecializationListSnapshot{
		State:    s.state.String(),
		Query:    s.query,
		Records:  cloneRecords(s.records),
		Filtered: cloneRecords(s.filtered),
	}
}

// settle stores the outcome of fetch generation; it reports false when a
// newer fetch has started meanwhile and the outcome was dropped.
func (s *ListState) settle(generation uint64, state ListStateName, records []responses.Specialization) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}
	if records == nil {
		records = []responses.Specialization{}
	}
	s.state = state
	s.records = records
	s.filtered = filterRecords(records, s.query)
	return true
}

func fetchErrorMessage(err error) string {
	switch exceptions.KindOf(err) {
	case exceptions.KindHTTPStatus:
		return exceptions.ClientMessageOf(err, constvars.ErrClientFailedToFetchSpecializations)
	default:
		return constvars.ErrClientFailedToFetchSpecializations
	}
}

// filterRecords keeps records whose name or description contains query,
// ignoring case. An empty query keeps everything in order.
func filterRecords(records []responses.Specialization, query string) []responses.Specialization {
	if query == "" {
		return cloneRecords(records)
	}
	needle := strings.ToLower(query)
	filtered := make([]responses.Specialization, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Name), needle) ||
			strings.Contains(strings.ToLower(record.Description), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// uniqueByID drops later duplicates of a positive id. Records without a
// usable id are kept so the admin still sees them.
func uniqueByID(records []responses.Specialization) []responses.Specialization {
	seen := make(map[int64]struct{}, len(records))
	unique := make([]responses.Specialization, 0, len(records))
	for _, record := range records {
		if record.ID > 0 {
			if _, ok := seen[record.ID]; ok {
				continue
			}
			seen[record.ID] = struct{}{}
		}
		unique = append(unique, record)
	}
	return unique
}

func cloneRecords(records []responses.Specialization) []responses.Specialization {
	cloned := make([]responses.Specialization, len(records))
	copy(cloned, records)
	return cloned
}
