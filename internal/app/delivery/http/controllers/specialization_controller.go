package controllers

import (
	"context"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/app/delivery/http/render"
	"konsulin-admin-console/internal/app/services/specializations"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"konsulin-admin-console/internal/pkg/exceptions"
	"konsulin-admin-console/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const pageTitleSpecializations = "Specializations"

type SpecializationController struct {
	Log                   *zap.Logger
	SpecializationUsecase contracts.SpecializationUsecase
	APIClient             contracts.APIClient
	Renderer              *render.Renderer
	RequestTimeout        time.Duration
}

func NewSpecializationController(
	logger *zap.Logger,
	specializationUsecase contracts.SpecializationUsecase,
	apiClient contracts.APIClient,
	renderer *render.Renderer,
	requestTimeout time.Duration,
) *SpecializationController {
	return &SpecializationController{
		Log:                   logger,
		SpecializationUsecase: specializationUsecase,
		APIClient:             apiClient,
		Renderer:              renderer,
		RequestTimeout:        requestTimeout,
	}
}

func (ctrl *SpecializationController) List(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SpecializationController.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	list := ctrl.SpecializationUsecase.NewListState()
	var notices []responses.Notice
	if notice := list.FetchAll(ctx); notice != nil {
		notices = append(notices, *notice)
	}

	ctrl.renderList(ctx, w, list, r.URL.Query().Get("q"), notices)
}

func (ctrl *SpecializationController) ToggleActive(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	rawID := chi.URLParam(r, "id")
	ctrl.Log.Info("SpecializationController.ToggleActive called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecializationRawKey, rawID),
	)

	// An unparseable or absent flag reads as inactive, matching the form's
	// hidden field for an inactive record.
	currentStatus, _ := strconv.ParseBool(r.FormValue("current"))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	list := ctrl.SpecializationUsecase.NewListState()
	notices := ctrl.SpecializationUsecase.ToggleActive(ctx, list, rawID, currentStatus)
	notices = ctrl.ensureFetched(ctx, list, notices)

	ctrl.renderList(ctx, w, list, r.FormValue("q"), notices)
}

func (ctrl *SpecializationController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	rawID := chi.URLParam(r, "id")
	ctrl.Log.Info("SpecializationController.ConfirmDelete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecializationRawKey, rawID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	ctrl.renderConfirm(ctx, w, constvars.StatusOK, rawID, r.URL.Query().Get("q"), ctrl.findByKey(ctx, rawID), nil)
}

func (ctrl *SpecializationController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	rawID := chi.URLParam(r, "id")
	confirmed := r.FormValue("confirm") == "yes"
	ctrl.Log.Info("SpecializationController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecializationRawKey, rawID),
		zap.Bool("confirmed", confirmed),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	list := ctrl.SpecializationUsecase.NewListState()
	notices := ctrl.SpecializationUsecase.Delete(ctx, list, rawID, confirmed)
	if !confirmed {
		ctrl.renderConfirm(ctx, w, constvars.StatusUnprocessableEntity, rawID, r.FormValue("q"), nil, notices)
		return
	}
	notices = ctrl.ensureFetched(ctx, list, notices)

	ctrl.renderList(ctx, w, list, r.FormValue("q"), notices)
}

// Healthz reports console liveness only; backend reachability is shown on the list page.
func (ctrl *SpecializationController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, "OK", nil)
}

// ensureFetched loads the list for display when the mutation failed before
// its own resynchronizing fetch.
func (ctrl *SpecializationController) ensureFetched(ctx context.Context, list contracts.SpecializationListState, notices []responses.Notice) []responses.Notice {
	if list.Snapshot().State != specializations.ListStateLoading.String() {
		return notices
	}
	notice := list.FetchAll(ctx)
	if notice == nil || containsNotice(notices, *notice) {
		return notices
	}
	return append(notices, *notice)
}

func (ctrl *SpecializationController) renderList(ctx context.Context, w http.ResponseWriter, list contracts.SpecializationListState, query string, notices []responses.Notice) {
	list.ApplyFilter(query)

	data := &render.PageData{
		Title:   pageTitleSpecializations,
		Notices: notices,
		Health:  ctrl.health(ctx),
		List:    list.Snapshot(),
	}
	ctrl.renderPage(ctx, w, constvars.StatusOK, render.PageSpecializations, data)
}

func (ctrl *SpecializationController) renderConfirm(ctx context.Context, w http.ResponseWriter, statusCode int, rawID, query string, specialization *responses.Specialization, notices []responses.Notice) {
	data := &render.PageData{
		Title:          "Delete specialization",
		Notices:        notices,
		RawID:          rawID,
		ConfirmMessage: constvars.ConfirmDeleteSpecialization,
		List:           responses.SpecializationListSnapshot{Query: query},
		Specialization: specialization,
	}
	ctrl.renderPage(ctx, w, statusCode, render.PageConfirmDelete, data)
}

// findByKey looks the record up so the confirmation page can name it. Any
// fetch problem just leaves the page without a name.
func (ctrl *SpecializationController) findByKey(ctx context.Context, rawID string) *responses.Specialization {
	list := ctrl.SpecializationUsecase.NewListState()
	if list.FetchAll(ctx) != nil {
		return nil
	}
	for _, record := range list.Snapshot().Records {
		if record.Key == rawID {
			record := record
			return &record
		}
	}
	return nil
}

func (ctrl *SpecializationController) health(ctx context.Context) *responses.HealthStatus {
	status, err := ctrl.APIClient.Health(ctx)
	if err != nil {
		ctrl.Log.Warn("SpecializationController.health error checking backend",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return &responses.HealthStatus{Reachable: false, Message: exceptions.ClientMessageOf(err, constvars.ErrClientBackendUnreachable)}
	}
	return status
}

func (ctrl *SpecializationController) renderPage(ctx context.Context, w http.ResponseWriter, statusCode int, page string, data *render.PageData) {
	if err := ctrl.Renderer.Page(w, statusCode, page, data); err != nil {
		ctrl.Log.Error("SpecializationController.renderPage error rendering template",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String("page", page),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(err, exceptions.KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, err.Error()))
	}
}

func containsNotice(notices []responses.Notice, notice responses.Notice) bool {
	for _, n := range notices {
		if n == notice {
			return true
		}
	}
	return false
}
