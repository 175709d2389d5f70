package users

// UsersListOutput for GET /users
type UsersListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body struct {
		Items      []User     `json:"items"`
		Total      int        `json:"total"                doc:"Users matching the filter" example:"5"`
		Roles      RoleCounts `json:"roles"                doc:"Counts across the whole directory"`
		NextCursor string     `json:"nextCursor,omitempty" doc:"Cursor of the next page"`
	}
}
