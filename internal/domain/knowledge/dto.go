package knowledge

type QueryInput struct {
	Query string `json:"query" binding:"required" example:"What documents do I need?"`
}
