package dto

// ClientForm campos crus do formulário de cliente, como chegam do POST.
// data_cadastro não entra aqui: é sempre carimbada pelo servidor.
type ClientForm struct {
	Name      string `form:"nome"`
	CPF       string `form:"cpf"`
	BirthDate string `form:"data_nascimento"`
	Income    string `form:"renda_familiar"`
}
