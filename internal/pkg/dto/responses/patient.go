package responses

type Patient struct {
	ID        string `json:"id"`
	Fullname  string `json:"fullname"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
}
