package specializations

import (
	"context"
	"fmt"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type specializationUsecase struct {
	SpecializationAPIClient contracts.SpecializationAPIClient
	TokenProvider           contracts.TokenProvider
	TokenInspector          contracts.TokenInspector
	Locker                  contracts.LockerService
	LockTTL                 time.Duration
	Log                     *zap.Logger
}

func NewSpecializationUsecase(
	specializationAPIClient contracts.SpecializationAPIClient,
	tokenProvider contracts.TokenProvider,
	tokenInspector contracts.TokenInspector,
	locker contracts.LockerService,
	lockTTL time.Duration,
	logger *zap.Logger,
) contracts.SpecializationUsecase {
	return &specializationUsecase{
		SpecializationAPIClient: specializationAPIClient,
		TokenProvider:           tokenProvider,
		TokenInspector:          tokenInspector,
		Locker:                  locker,
		LockTTL:                 lockTTL,
		Log:                     logger,
	}
}

// mutationMessages holds the wording that differs between toggle and delete.
type mutationMessages struct {
	operation      string
	loginRequired  string
	unauthorized   string
	failedFallback string
}

var (
	toggleMessages = mutationMessages{
		operation:      "ToggleActive",
		loginRequired:  constvars.ErrClientLoginToUpdateSpecialization,
		unauthorized:   constvars.ErrClientUnableToUpdate,
		failedFallback: constvars.ErrClientFailedToUpdateSpecialization,
	}
	deleteMessages = mutationMessages{
		operation:      "Delete",
		loginRequired:  constvars.ErrClientLoginToDeleteSpecialization,
		unauthorized:   constvars.ErrClientUnableToDelete,
		failedFallback: constvars.ErrClientFailedToDeleteSpecialization,
	}
)

func (uc *specializationUsecase) NewListState() contracts.SpecializationListState {
	return NewListState(uc.SpecializationAPIClient, uc.TokenProvider, uc.Log)
}

func (uc *specializationUsecase) ToggleActive(ctx context.Context, list contracts.SpecializationRefresher, rawID interface{}, currentStatus bool) []responses.Notice {
	uc.Log.Info("specializationUsecase.ToggleActive called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Any(constvars.LoggingSpecializationRawKey, rawID),
		zap.Bool(constvars.LoggingCurrentStatusKey, currentStatus),
	)

	result, err := uc.mutate(ctx, toggleMessages, rawID, uc.SpecializationAPIClient.ToggleActive)
	if err != nil {
		return []responses.Notice{uc.mutationErrorNotice(ctx, toggleMessages, err)}
	}

	message := result.Message
	if message == "" {
		status := constvars.SpecializationStatusDeactivated
		if !currentStatus {
			status = constvars.SpecializationStatusActivated
		}
		message = fmt.Sprintf(constvars.SuccessSpecializationToggledFormat, status)
	}
	return uc.resynchronize(ctx, list, responses.NewSuccessNotice(message))
}

func (uc *specializationUsecase) Delete(ctx context.Context, list contracts.SpecializationRefresher, rawID interface{}, confirmed bool) []responses.Notice {
	uc.Log.Info("specializationUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Any(constvars.LoggingSpecializationRawKey, rawID),
	)

	if !confirmed {
		err := exceptions.ErrConfirmationRequired()
		uc.Log.Info("specializationUsecase.Delete not confirmed, nothing sent",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		)
		return []responses.Notice{responses.NewErrorNotice(constvars.NoticeTitleError, err.ClientMessage)}
	}

	result, err := uc.mutate(ctx, deleteMessages, rawID, uc.SpecializationAPIClient.Delete)
	if err != nil {
		return []responses.Notice{uc.mutationErrorNotice(ctx, deleteMessages, err)}
	}

	message := result.Message
	if message == "" {
		message = constvars.SuccessSpecializationDeleted
	}
	return uc.resynchronize(ctx, list, responses.NewSuccessNotice(message))
}

// mutate runs the shared guard sequence: token, id, in-flight lock, then the call.
func (uc *specializationUsecase) mutate(
	ctx context.Context,
	messages mutationMessages,
	rawID interface{},
	call func(ctx context.Context, specializationID int64) (*responses.MutationResult, error),
) (*responses.MutationResult, error) {
	requestID := utils.RequestIDFromContext(ctx)

	if _, ok := uc.TokenProvider.GetToken(ctx); !ok {
		return nil, exceptions.ErrNoToken()
	}

	specializationID, err := utils.NormalizeID(rawID)
	if err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.LockKeySpecializationMutationFormat, specializationID)
	locked, lockValue, err := uc.Locker.TryLock(ctx, lockKey, uc.LockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, exceptions.ErrMutationInFlight(lockKey)
	}
	defer func() {
		if err := uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Error("specializationUsecase."+messages.operation+" error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingLockKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	result, err := call(ctx, specializationID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("specializationUsecase."+messages.operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSpecializationIDKey, specializationID),
	)
	return result, nil
}

// resynchronize refetches the collection after a successful mutation. The
// local collection is never patched with the delta.
func (uc *specializationUsecase) resynchronize(ctx context.Context, list contracts.SpecializationRefresher, success responses.Notice) []responses.Notice {
	notices := []responses.Notice{success}
	if list == nil {
		return notices
	}
	if notice := list.FetchAll(ctx); notice != nil {
		notices = append(notices, *notice)
	}
	return notices
}

// mutationErrorNotice converts a failed mutation into its notice. The held
// collection and the stored token are left as they are.
func (uc *specializationUsecase) mutationErrorNotice(ctx context.Context, messages mutationMessages, err error) responses.Notice {
	requestID := utils.RequestIDFromContext(ctx)
	kind := exceptions.KindOf(err)

	uc.Log.Error("specializationUsecase."+messages.operation+" error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingErrorKindKey, string(kind)),
		zap.Error(err),
	)

	switch kind {
	case exceptions.KindNoToken:
		return responses.Notice{
			Title:       constvars.NoticeTitleAuthenticationRequired,
			Description: messages.loginRequired,
			Variant:     constvars.NoticeVariantDefault,
		}
	case exceptions.KindUnauthorized:
		description := messages.unauthorized
		if token, ok := uc.TokenProvider.GetToken(ctx); ok && uc.TokenInspector != nil && uc.TokenInspector.IsExpired(token) {
			description = description + " " + constvars.ErrClientSessionLooksExpired
		}
		return responses.NewErrorNotice(constvars.NoticeTitleAuthenticationError, description)
	case exceptions.KindInvalidID, exceptions.KindInvalidIDFormat, exceptions.KindMutationInFlight,
		exceptions.KindHTTPStatus, exceptions.KindTransportFailure:
		return responses.NewErrorNotice(constvars.NoticeTitleError, exceptions.ClientMessageOf(err, messages.failedFallback))
	default:
		return responses.NewErrorNotice(constvars.NoticeTitleError, messages.failedFallback)
	}
}
