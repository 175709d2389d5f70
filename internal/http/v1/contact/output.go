package contact

// ContactCreateOutput for POST /contact (201 Created)
type ContactCreateOutput struct {
	Body Receipt
}
