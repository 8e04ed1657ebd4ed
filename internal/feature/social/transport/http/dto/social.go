package dto

type LikeRequest struct {
	UserID    uint `json:"userID"`
	HistoryID uint `json:"history_id"`
}

type CommentRequest struct {
	UserID      uint   `json:"userID"`
	HistoryID   uint   `json:"history_id"`
	CommentText string `json:"comment_text"`
}

type LikeResponse struct {
	LikeID      uint   `json:"like_id"`
	UserID      uint   `json:"userID"`
	HistoryID   uint   `json:"history_id"`
	AccountName string `json:"accountName,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type CommentResponse struct {
	CommentID   uint   `json:"comment_id"`
	UserID      uint   `json:"userID"`
	HistoryID   uint   `json:"history_id"`
	AccountName string `json:"accountName"`
	CommentText string `json:"comment_text"`
	CreatedAt   string `json:"created_at"`
}
