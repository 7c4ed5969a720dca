package patients

import (
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

type patientFhirClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPatientFhirClient(baseUrl string, logger *zap.Logger) contracts.PatientFhirClient {
	return &patientFhirClient{
		BaseUrl:    baseUrl + "/" + constvars.ResourcePatient,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Log:        logger,
	}
}

func (c *patientFhirClient) FindPatients(ctx context.Context) ([]fhir_dto.Patient, error) {
	requestID := utils.GetRequestIDFromContext(ctx)
	c.Log.Debug("patientFhirClient.FindPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatients error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatients error sending HTTP request",
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
		c.Log.Error("patientFhirClient.FindPatients FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(fhirErr),
		)
		return nil, exceptions.ErrGetFHIRResource(fhirErr, constvars.ResourcePatient)
	}

	var bundle fhir_dto.FHIRBundle
	err = json.NewDecoder(resp.Body).Decode(&bundle)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatients error decoding bundle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBundle)
	}

	patients := make([]fhir_dto.Patient, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		var patient fhir_dto.Patient
		err := json.Unmarshal(entry.Resource, &patient)
		if err != nil {
			c.Log.Error("patientFhirClient.FindPatients error decoding bundle entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
		}
		patients = append(patients, patient)
	}

	c.Log.Debug("patientFhirClient.FindPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(patients)),
	)
	return patients, nil
}
