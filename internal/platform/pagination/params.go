package pagination

// DefaultLimit is the page size used when the caller gives none.
const DefaultLimit = 10

// Params embeds into Huma input structs for pagination.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from previous response"`
	Limit  int    `query:"limit"  doc:"Maximum items per page"                          default:"10" minimum:"1" maximum:"50"`
}
