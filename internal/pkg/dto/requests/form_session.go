package requests

type StartFormSession struct {
	PatientID string `json:"patient_id" validate:"required"`
}

type SetAnswer struct {
	LinkID string `json:"link_id" validate:"required"`
	Value  int    `json:"value" validate:"required,min=1,max=5"`
}
