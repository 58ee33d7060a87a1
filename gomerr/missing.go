package gomerr

type MissingError struct {
	Gomerr
	What string
	From any `gomerr:"include_type"`
}

func Missing(what string, from any) *MissingError {
	return Build(new(MissingError), what, from).(*MissingError)
}
