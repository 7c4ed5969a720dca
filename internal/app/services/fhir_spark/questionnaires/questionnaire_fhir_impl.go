package questionnaires

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sus-form-service/internal/app/contracts"
	"sus-form-service/internal/pkg/constvars"
	"sus-form-service/internal/pkg/exceptions"
	"sus-form-service/internal/pkg/fhir_dto"
	"sus-form-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type questionnaireFhirClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewQuestionnaireFhirClient(baseUrl string, logger *zap.Logger) contracts.QuestionnaireFhirClient {
	return &questionnaireFhirClient{
		BaseUrl:    baseUrl + "/" + constvars.ResourceQuestionnaire,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Log:        logger,
	}
}

func (c *questionnaireFhirClient) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	c.Log.Info("questionnaireFhirClient.FindQuestionnaireByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaireID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, questionnaireID), nil)
	if err != nil {
		c.Log.Error("questionnaireFhirClient.FindQuestionnaireByID error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("questionnaireFhirClient.FindQuestionnaireByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrReadBody(err)
		}
		fhirErr := utils.ExtractFHIRError(bodyBytes, resp.StatusCode)
		c.Log.Error("questionnaireFhirClient.FindQuestionnaireByID FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(fhirErr),
		)
		return nil, exceptions.ErrGetFHIRResource(fhirErr, constvars.ResourceQuestionnaire)
	}

	questionnaire := new(fhir_dto.Questionnaire)
	err = json.NewDecoder(resp.Body).Decode(questionnaire)
	if err != nil {
		c.Log.Error("questionnaireFhirClient.FindQuestionnaireByID error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionnaire)
	}

	c.Log.Info("questionnaireFhirClient.FindQuestionnaireByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireIDKey, questionnaire.ID),
	)
	return questionnaire, nil
}
