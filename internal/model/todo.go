package model

// Todo is a task record owned by exactly one user
type Todo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
	OwnerID     int64  `json:"owner_id"`
}

// TodoRequest is used for creating and fully replacing a todo.
// It has no owner field: the owner always comes from the token.
type TodoRequest struct {
	Title       string `json:"title" binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=3,max=100"`
	Priority    int    `json:"priority" binding:"min=1,max=5"`
	Complete    bool   `json:"complete"`
}
