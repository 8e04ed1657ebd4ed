package dto

// GoalRequest is the JSON body of POST and PUT /future-goals.
type GoalRequest struct {
	UserID      uint   `json:"userID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date"`
}

type GoalResponse struct {
	GoalID      uint    `json:"goal_id"`
	UserID      uint    `json:"userID"`
	AccountName string  `json:"accountName,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TargetDate  *string `json:"target_date"`
	CreatedAt   string  `json:"created_at"`
}
