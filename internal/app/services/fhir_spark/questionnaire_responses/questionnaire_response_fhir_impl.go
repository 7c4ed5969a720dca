package questionnaire_responses

import (
	"bytes"
	"context"
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

type questionnaireResponseFhirClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewQuestionnaireResponseFhirClient(baseUrl string, logger *zap.Logger) contracts.QuestionnaireResponseFhirClient {
	return &questionnaireResponseFhirClient{
		BaseUrl:    baseUrl + "/" + constvars.ResourceQuestionnaireResponse,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Log:        logger,
	}
}

func (c *questionnaireResponseFhirClient) CreateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	c.Log.Info("questionnaireResponseFhirClient.CreateQuestionnaireResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("subject", request.Subject.Reference),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("questionnaireResponseFhirClient.CreateQuestionnaireResponse error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("questionnaireResponseFhirClient.CreateQuestionnaireResponse error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("questionnaireResponseFhirClient.CreateQuestionnaireResponse error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadBody(err)
	}

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		fhirErr := utils.ExtractFHIRError(bodyBytes, resp.StatusCode)
		c.Log.Error("questionnaireResponseFhirClient.CreateQuestionnaireResponse FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(fhirErr),
		)
		return nil, exceptions.ErrCreateFHIRResource(fhirErr, constvars.ResourceQuestionnaireResponse)
	}

	// Servers configured with Prefer: return=minimal reply with an empty body.
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return request, nil
	}

	questionnaireResponse := new(fhir_dto.QuestionnaireResponse)
	err = json.Unmarshal(bodyBytes, questionnaireResponse)
	if err != nil {
		c.Log.Error("questionnaireResponseFhirClient.CreateQuestionnaireResponse error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionnaireResponse)
	}

	c.Log.Info("questionnaireResponseFhirClient.CreateQuestionnaireResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireResponseIDKey, questionnaireResponse.ID),
	)
	return questionnaireResponse, nil
}
