package specializations

import (
	"context"
	"fmt"
	"konsulin-admin-console/internal/app/contracts"
	"konsulin-admin-console/internal/pkg/constvars"
	"konsulin-admin-console/internal/pkg/dto/responses"
	"konsulin-admin-console/internal/pkg/utils"

	"go.uber.org/zap"
)

type specializationAPIClient struct {
	Client contracts.APIClient
	Log    *zap.Logger
}

func NewSpecializationAPIClient(client contracts.APIClient, logger *zap.Logger) contracts.SpecializationAPIClient {
	return &specializationAPIClient{
		Client: client,
		Log:    logger,
	}
}

// FindAll degrades any body that is not an array of records to an empty collection.
func (c *specializationAPIClient) FindAll(ctx context.Context) ([]responses.Specialization, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("specializationAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := c.Client.Do(ctx, constvars.MethodGet, constvars.APIPathSpecializationsAll, nil)
	if err != nil {
		return nil, err
	}

	var records []responses.Specialization
	err = resp.DecodeJSON(&records)
	if err != nil {
		c.Log.Warn("specializationAPIClient.FindAll response is not a list, using empty collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return []responses.Specialization{}, nil
	}
	if records == nil {
		records = []responses.Specialization{}
	}

	for i := range records {
		id, err := utils.NormalizeID(records[i].Key)
		if err != nil {
			c.Log.Warn("specializationAPIClient.FindAll record without usable id",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSpecializationRawKey, records[i].Key),
			)
			continue
		}
		records[i].ID = id
	}

	c.Log.Info("specializationAPIClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(records)),
	)
	return records, nil
}

func (c *specializationAPIClient) ToggleActive(ctx context.Context, specializationID int64) (*responses.MutationResult, error) {
	return c.mutate(ctx, "ToggleActive", constvars.MethodPatch, fmt.Sprintf(constvars.APIPathSpecializationToggleFormat, specializationID), specializationID)
}

func (c *specializationAPIClient) Delete(ctx context.Context, specializationID int64) (*responses.MutationResult, error) {
	return c.mutate(ctx, "Delete", constvars.MethodDelete, fmt.Sprintf(constvars.APIPathSpecializationFormat, specializationID), specializationID)
}

func (c *specializationAPIClient) mutate(ctx context.Context, operation, method, path string, specializationID int64) (*responses.MutationResult, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("specializationAPIClient."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSpecializationIDKey, specializationID),
	)

	resp, err := c.Client.Do(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}

	result := new(responses.MutationResult)
	if err := resp.DecodeJSON(result); err != nil {
		c.Log.Warn("specializationAPIClient."+operation+" response has no message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		result = new(responses.MutationResult)
	}

	c.Log.Info("specializationAPIClient."+operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSpecializationIDKey, specializationID),
	)
	return result, nil
}
