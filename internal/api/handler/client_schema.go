package handler

// --- Request types ---

type createClientRequest struct {
	Nome           *string `json:"Nome"            validate:"required,max=100"`
	CPF            *string `json:"CPF"             validate:"required,cpf"`
	Telefone       *string `json:"Telefone"        validate:"required,max=15"`
	Email          *string `json:"Email"           validate:"required,email,max=100"`
	Senha          *string `json:"Senha"           validate:"required,min=1,max=72"`
	DataNascimento *string `json:"Data_Nascimento" validate:"required,datetime=2006-01-02"`
	Genero         *string `json:"Genero"          validate:"required,max=20"`
}

// updateClientRequest replaces every writable field. CPF identifies the row
// through the path; when repeated in the body it must match.
type updateClientRequest struct {
	Nome           *string `json:"Nome"            validate:"required,max=100"`
	CPF            *string `json:"CPF"             validate:"omitempty,cpf"`
	Telefone       *string `json:"Telefone"        validate:"required,max=15"`
	Email          *string `json:"Email"           validate:"required,email,max=100"`
	Senha          *string `json:"Senha"           validate:"required,min=1,max=72"`
	DataNascimento *string `json:"Data_Nascimento" validate:"required,datetime=2006-01-02"`
	Genero         *string `json:"Genero"          validate:"required,max=20"`
}

// --- Response types ---

// clientResponse never carries the password.
type clientResponse struct {
	Nome           string  `json:"Nome"`
	CPF            string  `json:"CPF"`
	Telefone       string  `json:"Telefone"`
	Email          string  `json:"Email"`
	DataNascimento *string `json:"Data_Nascimento"`
	Genero         string  `json:"Genero"`
}
