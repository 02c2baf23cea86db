package dto

// ─── Shared request/response shapes ─────────────────────────────────────────

// TransicionRequest asks to move a document to a new estado.
type TransicionRequest struct {
	Status string `json:"status" validate:"required"`
}

// EstadosResponse lists the current estado and its allowed successors.
type EstadosResponse struct {
	Status    string   `json:"status"`
	Sucesores []string `json:"sucesores"`
}

// ListadoResponse is the envelope for every paginated collection.
type ListadoResponse struct {
	Total int64 `json:"total"`
	Items any   `json:"items"`
}
