package dto

// SubmitTravelRequest is the multipart form of POST /travel-history.
// Images arrive in the "images" file field.
type SubmitTravelRequest struct {
	UserID      string `form:"userID"`
	Title       string `form:"title"`
	AreaName    string `form:"area_name"`
	Description string `form:"description"`
	Experiences string `form:"experiences"`
	StartDate   string `form:"startDate"`
	EndDate     string `form:"endDate"`
}

// TravelResponse is one entry with its media URLs.
type TravelResponse struct {
	HistoryID         uint     `json:"history_id"`
	UserID            uint     `json:"userID"`
	AccountName       string   `json:"accountName,omitempty"`
	Title             string   `json:"title"`
	AreaName          string   `json:"area_name"`
	DescriptionOfArea string   `json:"descriptionOfArea"`
	Experiences       string   `json:"experiences"`
	StartDate         string   `json:"startDate"`  // YYYY-MM-DD
	EndDate           string   `json:"end_date"`   // YYYY-MM-DD
	CreatedAt         string   `json:"created_at"` // RFC3339
	Media             []string `json:"media"`
}
