package clients

// AddClientRequest запрос на регистрацию клиента
type AddClientRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Discount  int
}
