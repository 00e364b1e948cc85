package clinics

type Clinic struct {
	ID      int64
	Name    string
	Address string
	Phone   string
}
