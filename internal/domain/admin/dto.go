package admin

type LoginInput struct {
	Username string `json:"username" binding:"required" example:"admin_gecw"`
	Password string `json:"password" binding:"required" example:"admin123"`
}
