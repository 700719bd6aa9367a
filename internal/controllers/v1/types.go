package v1

import (
	"github.com/gl-recovery/backend/internal/session"
	ez_uuid "github.com/gl-recovery/backend/internal/uuid"
)

// Controller holds the session store the handlers work on.
type Controller struct {
	Store *session.Store
}

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the session
}

type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of records to return
	Total  int  `json:"total" example:"827"` // The total number of records matching the filter
}
