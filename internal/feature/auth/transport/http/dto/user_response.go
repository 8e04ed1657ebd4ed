package dto

// CreatedUser is returned by POST /signup.
type CreatedUser struct {
	UserID      uint   `json:"userID"`
	AccountName string `json:"accountName"`
}

// UserProfile is the public view of a user.
type UserProfile struct {
	UserID                      uint    `json:"userID"`
	AccountName                 string  `json:"accountName"`
	UserEmail                   string  `json:"userEmail"`
	UserAge                     *int    `json:"userAge"`
	LastTrip                    *string `json:"lastTrip"`
	NumOfCitiesTravelled        int     `json:"numOfCitiesTravelled"`
	NumOfForeignCitiesTravelled int     `json:"numOfForeignCitiesTravelled"`
}
