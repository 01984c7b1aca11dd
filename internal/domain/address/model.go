package address

// Address - результат поиска по CEP.
type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}
