package clients

// Client es el dueño registrado en recepción. Nunca se elimina.
type Client struct {
	ID    string
	Name  string
	Phone string
}
