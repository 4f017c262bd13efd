package domain

// Client is a registered customer identified by CPF.
type Client struct {
	CPF          string
	Name         string
	Phone        string
	Email        string
	PasswordHash string
	BirthDate    Date
	Gender       string
}
