package contact

// ContactCreateInput for POST /contact. Presence and email format are checked
// by the handler so the visitor gets the form's own wording.
type ContactCreateInput struct {
	Body struct {
		Name    string `json:"name"    maxLength:"200"  doc:"Sender name"   example:"Jane Smith"`
		Email   string `json:"email"   maxLength:"254"  doc:"Sender email"  example:"jane@agric-empower.org"`
		Message string `json:"message" maxLength:"5000" doc:"Message text"  example:"When is the next seed distribution?"`
	}
}
