// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq is the body of POST /signup. Presence is checked by the usecase
// so that every missing field can be reported at once.
type SignupReq struct {
	AccountName string `json:"accountName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Age         *int   `json:"age"`
}
